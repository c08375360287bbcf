package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// errAlreadyRunning indicates another controller process owns the pins.
var errAlreadyRunning = errors.New("another controller is already running")

// ensureSingleInstance fails when another process runs the same executable.
// Two controllers on one pin set would interleave trigger and alert writes.
func ensureSingleInstance(executable string) error {
	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != executable {
			continue
		}

		return fmt.Errorf("%w: pid %d", errAlreadyRunning, process.Pid())
	}

	return nil
}

// executableName returns the file name of the running binary.
func executableName() string {
	path, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}

	return filepath.Base(path)
}
