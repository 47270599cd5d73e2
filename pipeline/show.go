package pipeline

import (
	"log"
	"os/exec"
	"runtime"

	"github.com/tikz/fingerprints/blob"
)

// viewerCommand returns the command that opens a file with the desktop default viewer.
func viewerCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	}
	return exec.Command("xdg-open", path)
}

// show opens written images one after another. Failures are logged, the images are already saved.
func show(sink blob.Sink, paths []string, logger *log.Logger) {
	if !sink.Local() {
		logger.Printf("not showing plots: output is not on the local filesystem")
		return
	}

	for _, p := range paths {
		out, err := viewerCommand(p).CombinedOutput()
		if err != nil {
			logger.Printf("show %s: %v %s", p, err, string(out))
		}
	}
}
