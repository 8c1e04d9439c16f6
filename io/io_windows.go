//go:build windows

package argvio

import (
	"os"
	"runtime"
	"syscall"
	"unsafe"
)

type windowsPlatform struct{}

func newPlatformIO() platformIO { return &windowsPlatform{} }

var (
	kernel32           = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleMode = kernel32.NewProc("GetConsoleMode")
	procSetConsoleMode = kernel32.NewProc("SetConsoleMode")
	procGetStdHandle   = kernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = ^uintptr(10) + 1 // (uintptr)(-11)
	enableVirtualTerminalProcessing = 0x0004
)

func (w *windowsPlatform) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var mode uint32
	h := uintptr(f.Fd())
	if f == os.Stdout {
		h = stdOutputHandle
	}
	r, _, _ := procGetConsoleMode.Call(h, uintptr(unsafe.Pointer(&mode)))
	return r != 0
}

// stdoutMode returns the console mode of stdout, or false if it is not a console
func stdoutMode() (uintptr, uint32, bool) {
	var mode uint32
	h, _, _ := procGetStdHandle.Call(stdOutputHandle)
	if h == 0 || h == ^uintptr(0) {
		return 0, 0, false
	}
	r, _, _ := procGetConsoleMode.Call(h, uintptr(unsafe.Pointer(&mode)))
	if r == 0 {
		return 0, 0, false
	}
	return h, mode, true
}

func (w *windowsPlatform) enableVirtualTerminal() bool {
	h, mode, ok := stdoutMode()
	if !ok {
		return false
	}
	if mode&enableVirtualTerminalProcessing != 0 {
		return true
	}
	mode |= enableVirtualTerminalProcessing
	r, _, _ := procSetConsoleMode.Call(h, uintptr(mode))
	return r != 0
}

func (w *windowsPlatform) vtEnabled() bool {
	_, mode, ok := stdoutMode()
	return ok && mode&enableVirtualTerminalProcessing != 0
}

func goos() string { return runtime.GOOS }
