package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/library"
	"github.com/ayusman/mudra/internal/logging"
	"github.com/ayusman/mudra/internal/render"
	"github.com/ayusman/mudra/internal/sensing"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/stage"
	"github.com/ayusman/mudra/internal/tray"
	"github.com/ayusman/mudra/internal/video"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get home directory: %v\n", err)
		os.Exit(1)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Options{
		Level:  os.Getenv("MUDRA_LOG_LEVEL"),
		LogDir: dataDir,
	})
	log.Info("Mudra - Hand Pose Sensing")

	lib, err := library.New(filepath.Join(dataDir, "mudra.db"))
	if err != nil {
		log.WithError(err).Fatal("Failed to open image library")
	}
	defer lib.Close()

	device := video.NewDevice(cameraID())

	// Try MediaPipe first, fall back to a mock so the API surface still
	// works without the Python side installed.
	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		det = mp
		log.Info("Using MediaPipe hand detection")
	} else {
		log.WithError(err).Warn("MediaPipe not available, using mock detector")
		det = detector.NewMockDetector()
	}
	defer det.Close()

	controller := sensing.New(sensing.Config{
		Detector:  det,
		Device:    device,
		Stage:     stage.NewMemoryProvider(),
		Snapshots: render.NewPreviewSnapshotter(device),
		Images:    lib,
		Log:       log,
	})
	controller.SyncDisplayToDevice()
	defer controller.Stop()

	webDir := findWebDir(homeDir)
	if webDir != "" {
		log.WithField("dir", webDir).Info("Serving static files")
	}

	srv := server.New(server.Config{
		StaticDir:  webDir,
		Controller: controller,
		Device:     device,
		Library:    lib,
	})

	addr := os.Getenv("MUDRA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	go func() {
		log.WithField("addr", addr).Info("Starting server")
		if err := srv.ListenAndServe(addr); err != nil {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	t := tray.New()
	t.OnToggle(func(sensing bool) {
		if sensing {
			if err := controller.Start(); err != nil {
				log.WithError(err).Error("Failed to start sensing")
			}
		} else {
			controller.Stop()
		}
	})
	t.OnSettings(func() {
		openBrowser(addr)
	})
	t.OnQuit(func() {
		controller.Stop()
	})

	// Blocks until quit from the tray menu.
	t.Run()
}

// cameraID reads MUDRA_CAMERA_ID, defaulting to device 0.
func cameraID() int {
	if v := os.Getenv("MUDRA_CAMERA_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			return id
		}
	}
	return 0
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir(homeDir string) string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

// openBrowser opens the settings UI for the given listen address.
func openBrowser(addr string) {
	url := "http://localhost" + addr
	if addr != "" && addr[0] != ':' {
		url = "http://" + addr
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
