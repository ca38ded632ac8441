package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devicelist"
)

var (
	// set on build:
	// go build -o devicelist -ldflags="-X main.version=$(git --git-dir=src/github.com/cloudradar-monitoring/devicelist/.git describe --always --long --dirty --tag)" github.com/cloudradar-monitoring/devicelist/cmd/devicelist
	version string
)

func main() {
	// Setup flag pointers
	outputFilePtr := flag.String("o", "", "file to write the device listing (\"-\" for stdout)")
	cfgPathPtr := flag.String("c", devicelist.DefaultCfgPath, "config file path")
	logLevelPtr := flag.String("v", "", "log level – overrides the level in config file (values \"error\",\"info\",\"debug\")")
	formatPtr := flag.String("f", "", fmt.Sprintf("output format – overrides the format in config file (values \"%s\",\"%s\")", devicelist.FormatText, devicelist.FormatJSON))
	backendPtr := flag.String("b", "", "enumeration backend – overrides the backend in config file (values \"wmi\",\"setupapi\",\"ghw\")")
	watchModePtr := flag.Bool("w", false, "watch – keep re-listing the devices every interval until interrupted")
	testConfigPtr := flag.Bool("t", false, "test the connection to the device registry and exit")
	printConfigPtr := flag.Bool("p", false, "print the active config")
	versionPtr := flag.Bool("version", false, "show the devicelist version")

	flag.Parse()

	// version should be handled first to ensure it will be accessible in case of fatal errors before
	handleFlagVersion(*versionPtr)

	cfg, err := devicelist.HandleAllConfigSetup(*cfgPathPtr)
	if err != nil {
		log.Fatalf("Failed to handle devicelist configuration: %s", err.Error())
	}

	applyFlagOverrides(cfg, *formatPtr, *backendPtr)

	handleFlagPrintConfig(*printConfigPtr, cfg)

	setDefaultLogFormatter()

	dl, err := devicelist.New(cfg, *cfgPathPtr)
	if err != nil {
		log.Fatalf("Failed to init devicelist: %s", err.Error())
	}
	dl.SetVersion(version)

	// log level set in flag has a precedence. If specified we need to set it ASAP
	handleFlagLogLevel(dl, *logLevelPtr)

	handleFlagTest(*testConfigPtr, dl)

	output := handleFlagOutput(*outputFilePtr, *watchModePtr)
	if output != nil && output != os.Stdout {
		defer output.Close()
	}

	if !*watchModePtr {
		if err := dl.RunOnce(output); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// watch mode: keep listing and wait for interrupt
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM)
	interruptChan := make(chan struct{})
	doneChan := make(chan struct{})
	go func() {
		dl.Run(output, interruptChan)
		doneChan <- struct{}{}
	}()

	select {
	case sig := <-sigc:
		log.Infof("Got %s signal. Finishing the listing and exit...", sig.String())
		interruptChan <- struct{}{}
		os.Exit(0)
	case <-doneChan:
		os.Exit(0)
	}
}

func handleFlagVersion(versionFlag bool) {
	if versionFlag {
		fmt.Printf("devicelist v%s released under MIT license. https://github.com/cloudradar-monitoring/devicelist/\n", version)
		os.Exit(0)
	}
}

func applyFlagOverrides(cfg *devicelist.Config, format string, backend string) {
	if format != "" {
		cfg.Format = format
	}

	if backend != "" {
		cfg.Backend = backend
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flag override: %s", err.Error())
	}
}

func handleFlagPrintConfig(printConfig bool, cfg *devicelist.Config) {
	if printConfig {
		fmt.Println(cfg.DumpToml())
		os.Exit(0)
	}
}

func handleFlagLogLevel(dl *devicelist.DeviceLister, logLevel string) {
	// Check loglevel and if needed warn user and set to default
	if logLevel == string(devicelist.LogLevelError) || logLevel == string(devicelist.LogLevelInfo) || logLevel == string(devicelist.LogLevelDebug) {
		dl.SetLogLevel(devicelist.LogLevel(logLevel))
	} else if logLevel != "" {
		log.Warnf("Invalid log level: \"%s\". Set to default: \"%s\"", logLevel, dl.Config.LogLevel)
	}
}

func handleFlagTest(testConfig bool, dl *devicelist.DeviceLister) {
	if !testConfig {
		return
	}

	err := dl.TestConnection()
	if err != nil {
		if runtime.GOOS == "windows" {
			// ignore toast error to make the main error clear for user
			// toast error probably means toast not supported on the system
			_ = sendErrorNotification("Devicelist registry test failed", err.Error())
		}
		fmt.Printf("Device registry test failed: %s\n", err.Error())
		os.Exit(1)
	}

	if runtime.GOOS == "windows" {
		_ = sendSuccessNotification("Devicelist registry test succeeded", "")
	}

	fmt.Printf("Device registry connection test succeeded!\n")
	os.Exit(0)
}

func handleFlagOutput(outputFile string, watchMode bool) *os.File {
	if outputFile == "" {
		return nil
	}

	// forward output to stdout
	if outputFile == "-" {
		log.SetOutput(ioutil.Discard)
		return os.Stdout
	}

	// if the output file does not exist, try to create it
	if _, err := os.Stat(outputFile); os.IsNotExist(err) {
		dir := filepath.Dir(outputFile)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			err = os.MkdirAll(dir, 0755)
			if err != nil {
				log.WithError(err).Fatalf("Failed to create the output file directory: '%s'", dir)
			}
		}
	}

	mode := os.O_WRONLY | os.O_CREATE

	if watchMode {
		mode = mode | os.O_APPEND
	} else {
		mode = mode | os.O_TRUNC
	}

	// Ensure that we can open the output file
	output, err := os.OpenFile(outputFile, mode, 0644)
	if err != nil {
		log.WithError(err).Fatalf("Failed to open the output file: '%s'", outputFile)
	}

	return output
}

func setDefaultLogFormatter() {
	tfmt := log.TextFormatter{FullTimestamp: true}
	if runtime.GOOS == "windows" {
		tfmt.DisableColors = true
	}

	log.SetFormatter(&tfmt)
}
