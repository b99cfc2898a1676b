package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/mycelia/internal/applog"
	"github.com/ytget/mycelia/internal/config"
	"github.com/ytget/mycelia/internal/fetch"
	"github.com/ytget/mycelia/internal/loader"
	"github.com/ytget/mycelia/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "re.nel.mycelia"
	AppName = "Mycelia"
)

func main() {
	applog.Init(os.Stderr, false)

	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("[main]: cannot load environment", "error", err)
		os.Exit(1)
	}
	applog.SetDebug(env.Debug)
	slog.Info("[main]: starting", "app", AppName, "version", version, "endpoint", env.Endpoint)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Persisted state is read once here and written once on close
	settings := config.NewSettings(myApp)
	apiKey := config.ResolveAPIKey(settings.GetAPIKey(), env)

	client := fetch.NewClient(
		fetch.WithTimeout(env.Timeout),
		fetch.WithUserAgent(AppName+"/"+version),
	)
	loaderSvc := loader.NewService(client, env.Endpoint)

	root := ui.NewRootUI(myWindow, loaderSvc, settings, apiKey)
	myWindow.SetOnClosed(func() {
		root.Stop()
		root.SaveState()
		slog.Info("[main]: state saved, shutting down")
	})
	root.Start()

	myWindow.ShowAndRun()
}
