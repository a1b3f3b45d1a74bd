// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Network and geo-restriction options.
const (
	Proxy                OptionID = "proxy"
	SocketTimeout        OptionID = "socket-timeout"
	SourceAddress        OptionID = "source-address"
	ForceIPv4            OptionID = "force-ipv4"
	ForceIPv6            OptionID = "force-ipv6"
	EnableFileURLs       OptionID = "enable-file-urls"
	GeoVerificationProxy OptionID = "geo-verification-proxy"
	XFF                  OptionID = "xff"
)

var networkOptions = []OptionSpec{
	{ID: Proxy, Flag: "--proxy", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: SocketTimeout, Flag: "--socket-timeout", Arity: 1, SingleUse: true, Validate: requireNonNegFloat},
	{ID: SourceAddress, Flag: "--source-address", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: ForceIPv4, Flag: "--force-ipv4", Arity: 0, SingleUse: true},
	{ID: ForceIPv6, Flag: "--force-ipv6", Arity: 0, SingleUse: true},
	{ID: EnableFileURLs, Flag: "--enable-file-urls", Arity: 0, SingleUse: true},
	{ID: GeoVerificationProxy, Flag: "--geo-verification-proxy", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: XFF, Flag: "--xff", Arity: 1, SingleUse: true, Validate: requireValue},
}
