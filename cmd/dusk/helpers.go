package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/dusklight/dusk/pkg/client"
	"github.com/dusklight/dusk/pkg/version"
)

// apiClient is built lazily so the --daemon-socket flag has been parsed
// by the time the first request goes out.
func apiClient() *client.Client {
	return client.NewClient(unixSocketPath)
}

func getVersion() (clientVersion, daemonVersion string, err error) {
	daemonVersion, err = apiClient().GetVersion()
	return version.Version, daemonVersion, err
}

func parseIntArg(args []string, valueName string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("invalid number of arguments")
	}

	value, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", valueName, err)
	}

	return value, nil
}

func parseFloatArg(arg, valueName string) (float64, error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", valueName, err)
	}

	return value, nil
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
