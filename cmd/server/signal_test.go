package main

import (
	"errors"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestWaitForShutdown_Signals(t *testing.T) {
	for _, sig := range []syscall.Signal{syscall.SIGINT, syscall.SIGTERM} {
		t.Run(sig.String(), func(t *testing.T) {
			done := make(chan bool)
			go func() {
				WaitForShutdown(nil)
				done <- true
			}()

			time.Sleep(50 * time.Millisecond)

			currentProcess, err := os.FindProcess(os.Getpid())
			if err != nil {
				t.Fatalf("Failed to find current process: %v", err)
			}

			if err := currentProcess.Signal(sig); err != nil {
				t.Fatalf("Failed to send %v: %v", sig, err)
			}

			select {
			case <-done:
			case <-time.After(1 * time.Second):
				t.Fatalf("WaitForShutdown did not return after receiving %v", sig)
			}
		})
	}
}

func TestWaitForShutdown_ServerError(t *testing.T) {
	errs := make(chan error, 1)
	errs <- errors.New("listener closed")

	done := make(chan bool)
	go func() {
		WaitForShutdown(errs)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("WaitForShutdown did not return after a server error")
	}
}
