// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags every data-emitting subcommand shares.
func NewGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "color",
			Aliases:     []string{"c"},
			Usage:       "force colored output on (default: only when stdout is a terminal)",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "force colored output off",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "config-dir",
			Usage:   "directory to read tag-colors.json from, overriding platform resolution",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TAGTINT_CONFIG_DIR")),
		},
	}
}

// NewOutputFlag constructs the --output flag. When the user has a settings
// file, its "output" key (optionally namespaced by command) joins the value
// source chain after the environment variable.
func NewOutputFlag(ns string, settingsPath string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TAGTINT_OUTPUT"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	if settingsPath != "" {
		flag = SettingsValueChainFlag(ns, settingsPath, flag)
	}

	return flag
}

// SettingsValueChainFlag adds namespaced and global settings file sources to
// the given flag's Sources chain.
func SettingsValueChainFlag(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
