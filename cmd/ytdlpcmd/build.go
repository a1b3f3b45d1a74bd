// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"ytdlpcmd/internal/config"
	"ytdlpcmd/internal/issue"
	"ytdlpcmd/pkg/ytdlp"

	"github.com/spf13/cobra"
)

// buildFlags holds the per-run option values shared by `print` and `run`.
// Flag values take precedence over the corresponding config defaults.
type buildFlags struct {
	format             string
	output             string
	outputDir          string
	limitRate          string
	retries            string
	proxy              string
	batchFile          string
	playlistItems      string
	downloadArchive    string
	cookiesFromBrowser string
	extractAudio       bool
	audioFormat        string
	writeSubs          bool
	subLangs           string
	embedThumbnail     bool
	embedMetadata      bool
	simulate           bool
	noPlaylist         bool
}

// registerBuildFlags attaches the shared option flags to a command.
func registerBuildFlags(cmd *cobra.Command, flags *buildFlags) {
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "format selector (--format)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output filename template (--output)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "download directory (--paths home:DIR)")
	cmd.Flags().StringVar(&flags.limitRate, "limit-rate", "", "maximum download rate, e.g. 4.2M (--limit-rate)")
	cmd.Flags().StringVar(&flags.retries, "retries", "", "number of retries or \"infinite\" (--retries)")
	cmd.Flags().StringVar(&flags.proxy, "proxy", "", "proxy URL (--proxy)")
	cmd.Flags().StringVarP(&flags.batchFile, "batch-file", "a", "", "file with URLs to download (--batch-file)")
	cmd.Flags().StringVar(&flags.playlistItems, "playlist-items", "", "playlist item selection (--playlist-items)")
	cmd.Flags().StringVar(&flags.downloadArchive, "download-archive", "", "archive file of downloaded IDs (--download-archive)")
	cmd.Flags().StringVar(&flags.cookiesFromBrowser, "cookies-from-browser", "", "browser cookie source, e.g. firefox:Work (--cookies-from-browser)")
	cmd.Flags().BoolVarP(&flags.extractAudio, "extract-audio", "x", false, "convert video to audio-only (--extract-audio)")
	cmd.Flags().StringVar(&flags.audioFormat, "audio-format", "", "audio format for --extract-audio (--audio-format)")
	cmd.Flags().BoolVar(&flags.writeSubs, "write-subs", false, "write subtitle files (--write-subs)")
	cmd.Flags().StringVar(&flags.subLangs, "sub-langs", "", "subtitle languages, comma separated (--sub-langs)")
	cmd.Flags().BoolVar(&flags.embedThumbnail, "embed-thumbnail", false, "embed thumbnail in the file (--embed-thumbnail)")
	cmd.Flags().BoolVar(&flags.embedMetadata, "embed-metadata", false, "embed metadata in the file (--embed-metadata)")
	cmd.Flags().BoolVarP(&flags.simulate, "simulate", "s", false, "do not download or write anything (--simulate)")
	cmd.Flags().BoolVar(&flags.noPlaylist, "no-playlist", false, "download only the video from a playlist URL (--no-playlist)")
}

// buildCommand assembles a yt-dlp command from config defaults, flag values,
// configured extra args, and the target URL. Flags win over config for
// options yt-dlp honors only once.
func buildCommand(cfg *config.Config, flags *buildFlags, url string) (*ytdlp.Command, error) {
	c := ytdlp.NewWithPath(string(cfg.Executable))

	// Single-use value options: flag beats config default.
	if err := setFirst(c, ytdlp.Format, flags.format, cfg.Download.Format); err != nil {
		return nil, err
	}
	if err := setFirst(c, ytdlp.Output, flags.output, cfg.Download.OutputTemplate); err != nil {
		return nil, err
	}
	if err := setFirst(c, ytdlp.LimitRate, flags.limitRate, cfg.Download.RateLimit); err != nil {
		return nil, err
	}

	outputDir := flags.outputDir
	if outputDir == "" {
		outputDir = cfg.Download.OutputDir
	}
	if outputDir != "" {
		if err := c.Set(ytdlp.Paths, "home:"+outputDir); err != nil {
			return nil, err
		}
	}

	valueOpts := []struct {
		id    ytdlp.OptionID
		value string
	}{
		{ytdlp.Retries, flags.retries},
		{ytdlp.Proxy, flags.proxy},
		{ytdlp.BatchFile, flags.batchFile},
		{ytdlp.PlaylistItems, flags.playlistItems},
		{ytdlp.DownloadArchive, flags.downloadArchive},
		{ytdlp.CookiesFromBrowser, flags.cookiesFromBrowser},
		{ytdlp.AudioFormat, flags.audioFormat},
		{ytdlp.SubLangs, flags.subLangs},
	}
	for _, opt := range valueOpts {
		if opt.value == "" {
			continue
		}
		if err := c.Set(opt.id, opt.value); err != nil {
			return nil, err
		}
	}

	boolOpts := []struct {
		id  ytdlp.OptionID
		set bool
	}{
		{ytdlp.ExtractAudio, flags.extractAudio},
		{ytdlp.WriteSubs, flags.writeSubs},
		{ytdlp.EmbedThumbnail, flags.embedThumbnail},
		{ytdlp.EmbedMetadata, flags.embedMetadata},
		{ytdlp.Simulate, flags.simulate},
		{ytdlp.NoPlaylist, flags.noPlaylist},
	}
	for _, opt := range boolOpts {
		if !opt.set {
			continue
		}
		if err := c.SetFlag(opt.id); err != nil {
			return nil, err
		}
	}

	// Configured extra args pass through verbatim, after validated options.
	extra, err := config.SplitExtraArgs(cfg.ExtraArgs)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("apply configured extra_args").
			WithSuggestion("Check the extra_args value for unbalanced quotes").
			Wrap(err).
			BuildError()
	}
	c.Append(extra...)

	if url != "" {
		if err := c.URL(url); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// setFirst sets the option to the flag value when present, otherwise to the
// config default, otherwise leaves it unset.
func setFirst(c *ytdlp.Command, id ytdlp.OptionID, flagValue, configValue string) error {
	value := flagValue
	if value == "" {
		value = configValue
	}
	if value == "" {
		return nil
	}
	return c.Set(id, value)
}
