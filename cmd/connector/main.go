package main

import (
	"io"
	"os"

	"github.com/Adenics/firefox-profile-switcher-connector/internal/build"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/browser"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/config"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/connector"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/launcher"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/nativemsg"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/profiles"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/state"
	"github.com/common-fate/clio"
	"github.com/urfave/cli/v2"
)

func main() {
	// Trampoline re-entry is dispatched before any CLI parsing so the
	// browser's arguments are never interpreted as flags.
	if len(os.Args) > 1 && os.Args[1] == launcher.TrampolineCommand {
		os.Exit(launcher.RunTrampoline(os.Args[2:]))
	}

	app := &cli.App{
		Name:    build.ConnectorBinaryName(),
		Usage:   "Native messaging host for the Profile Switcher extension",
		Version: build.Version,
		// the browser passes the manifest path and extension origin as
		// positional arguments; they are not used
		Action: run,
	}

	err := app.Run(os.Args)
	if err != nil {
		clio.Error(err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	discovery := browser.Discover()
	processState := state.New(cfg, discovery)

	l, err := launcher.New()
	if err != nil {
		return err
	}

	registry := profiles.Registry{
		ProfilesIniPath: cfg.ProfilesIniPath(processState.MSIXPackage()),
		InstallsIniPath: cfg.InstallsIniPath(processState.MSIXPackage()),
	}

	channel := &nativemsg.Channel{Input: os.Stdin, Output: os.Stdout}
	messenger := connector.ChannelMessenger{Channel: channel}
	handler := connector.NewHandler(processState, registry, messenger, l)

	clio.Debugf("connector %s ready, profiles at %s", build.Version, registry.ProfilesIniPath)

	// one request at a time, until the browser closes the channel
	for {
		payload, err := channel.ReadMessage()
		if err == io.EOF {
			clio.Debug("message channel closed")
			return nil
		}
		if err != nil {
			return err
		}

		resp := handler.HandleMessage(payload)
		if err := messenger.WriteResponse(resp); err != nil {
			return err
		}
	}
}
