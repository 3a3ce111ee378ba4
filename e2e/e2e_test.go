package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/library"
	"github.com/ayusman/mudra/internal/sensing"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/stage"
	"github.com/ayusman/mudra/internal/video"
	"github.com/ayusman/mudra/testdata"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	lib, err := library.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("library.New() error = %v", err)
	}
	defer lib.Close()

	det := detector.NewMockDetector()
	dev := video.NewMockDevice()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	controller := sensing.New(sensing.Config{
		Detector: det,
		Device:   dev,
		Stage:    stage.NewMemoryProvider(),
		Images:   lib,
		Log:      logger,
	})
	defer controller.Stop()

	srv := server.New(server.Config{
		Controller: controller,
		Device:     dev,
		Library:    lib,
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("UploadImage", func(t *testing.T) {
		data, err := testdata.EncodedImage(80, 60, ".png")
		if err != nil {
			t.Fatalf("EncodedImage() error = %v", err)
		}

		resp, err := client.Post(ts.URL+"/api/images?name=pose", "image/png", bytes.NewReader(data))
		if err != nil {
			t.Fatalf("upload image error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
	})

	t.Run("DetectFromNamedImage", func(t *testing.T) {
		det.SetResult(detector.SingleHandResult())

		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/detect/image",
			strings.NewReader(`{"name": "pose"}`))
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("detect error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var status struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&status)
		if status.Kind != "ok" {
			t.Errorf("kind = %q, want %q", status.Kind, "ok")
		}
		if status.Message != "hand detection finished" {
			t.Errorf("message = %q", status.Message)
		}
	})

	t.Run("QueryHands", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/hands/1")
		if err != nil {
			t.Fatalf("get hand error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var hand struct {
			Handedness string `json:"handedness"`
			Landmarks  []struct {
				X, Y, Z float64
			} `json:"landmarks"`
		}
		json.NewDecoder(resp.Body).Decode(&hand)

		if hand.Handedness != "Right" {
			t.Errorf("handedness = %q, want %q", hand.Handedness, "Right")
		}
		if len(hand.Landmarks) != detector.NumLandmarks {
			t.Fatalf("landmarks = %d, want %d", len(hand.Landmarks), detector.NumLandmarks)
		}

		// Wrist at normalized {0.5, 0.6, 0.1} in screen space.
		wrist := hand.Landmarks[0]
		if wrist.X != 0 || wrist.Y != -36 || wrist.Z != 20 {
			t.Errorf("wrist = %+v, want {0 -36 20}", wrist)
		}
	})

	t.Run("SensingRoundTrip", func(t *testing.T) {
		resp, err := client.Post(ts.URL+"/api/sensing/start", "application/json", nil)
		if err != nil {
			t.Fatalf("start error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("start status = %d", resp.StatusCode)
		}
		if !dev.IsEnabled() {
			t.Error("device should be enabled while sensing")
		}

		resp, err = client.Post(ts.URL+"/api/sensing/stop", "application/json", nil)
		if err != nil {
			t.Fatalf("stop error = %v", err)
		}
		defer resp.Body.Close()

		var status struct {
			Running bool `json:"running"`
			Hands   int  `json:"hands"`
		}
		json.NewDecoder(resp.Body).Decode(&status)
		if status.Running {
			t.Error("sensing should be stopped")
		}
		if status.Hands != 0 {
			t.Errorf("hands = %d, stop should clear the cache", status.Hands)
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, _ := client.Get(ts.URL + "/api/health")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after workflow")
		}
		resp.Body.Close()
	})
}

func TestE2E_ImageLibraryIndexFallback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	lib, err := library.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("library.New() error = %v", err)
	}
	defer lib.Close()

	det := detector.NewMockDetector()
	det.SetResult(detector.SingleHandResult())

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	controller := sensing.New(sensing.Config{
		Detector: det,
		Device:   video.NewMockDevice(),
		Stage:    stage.NewMemoryProvider(),
		Images:   lib,
		Log:      logger,
	})
	defer controller.Stop()

	data, err := testdata.EncodedImage(40, 30, ".png")
	if err != nil {
		t.Fatalf("EncodedImage() error = %v", err)
	}
	for _, name := range []string{"alpha", "beta"} {
		if _, err := lib.Add(name, "png", data); err != nil {
			t.Fatalf("Add(%q) error = %v", name, err)
		}
	}

	// "2" is not a stored name, so it resolves as a 1-based index.
	if status := controller.DetectFromNamedImage("2"); status.Kind != sensing.StatusOK {
		t.Errorf("status = %v, want ok", status)
	}
	if got := controller.NumberOfHands(); got != 1 {
		t.Errorf("NumberOfHands() = %d, want 1", got)
	}

	if status := controller.DetectFromNamedImage("nope"); status.Kind != sensing.StatusNotFound {
		t.Errorf("status = %v, want not_found", status)
	}
}
