package common

import (
	"github.com/ternarybob/banner"
)

// PrintBanner displays the tool banner with the resolved driver settings
func PrintBanner(config *Config) {
	b := banner.New().SetStyle(banner.StyleRound).SetBold(true)

	target := config.Driver.RemoteURL
	if target == "" {
		target = "local browser"
	}

	b.PrintTopLine()
	b.PrintCenteredText("Status Bar " + GetVersion())
	b.PrintSeparatorLine()
	b.PrintKeyValue("Driver", target, 15)
	b.PrintKeyValue("Workbench", config.Driver.WorkbenchURL, 15)
	b.PrintKeyValue("Implicit wait", config.Driver.ImplicitWait, 15)
	b.PrintKeyValue("Log level", config.Logging.Level, 15)
	b.PrintBottomLine()
}
