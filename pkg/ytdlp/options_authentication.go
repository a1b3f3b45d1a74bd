// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Authentication options.
const (
	Username            OptionID = "username"
	Password            OptionID = "password"
	TwoFactor           OptionID = "twofactor"
	Netrc               OptionID = "netrc"
	NetrcLocation       OptionID = "netrc-location"
	NetrcCmd            OptionID = "netrc-cmd"
	VideoPassword       OptionID = "video-password"
	APMso               OptionID = "ap-mso"
	APUsername          OptionID = "ap-username"
	APPassword          OptionID = "ap-password"
	ClientCertificate   OptionID = "client-certificate"
	ClientCertificateKey OptionID = "client-certificate-key"
)

var authenticationOptions = []OptionSpec{
	{ID: Username, Flag: "--username", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: Password, Flag: "--password", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: TwoFactor, Flag: "--twofactor", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: Netrc, Flag: "--netrc", Arity: 0, SingleUse: true},
	{ID: NetrcLocation, Flag: "--netrc-location", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: NetrcCmd, Flag: "--netrc-cmd", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: VideoPassword, Flag: "--video-password", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: APMso, Flag: "--ap-mso", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: APUsername, Flag: "--ap-username", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: APPassword, Flag: "--ap-password", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: ClientCertificate, Flag: "--client-certificate", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: ClientCertificateKey, Flag: "--client-certificate-key", Arity: 1, SingleUse: true, Validate: requireValue},
}
