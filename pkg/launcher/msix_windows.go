//go:build windows

package launcher

import (
	"syscall"
	"unsafe"

	"github.com/common-fate/clio"
	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

var (
	clsidApplicationActivationManager = ole.NewGUID("{45BA127D-10A8-46EA-8AB7-56EA9078943C}")
	iidIApplicationActivationManager  = ole.NewGUID("{2E941141-7F97-4756-BA1D-9DECDE894A3D}")
)

type iApplicationActivationManager struct {
	ole.IUnknown
}

type iApplicationActivationManagerVtbl struct {
	ole.IUnknownVtbl
	ActivateApplication uintptr
	ActivateForFile     uintptr
	ActivateForProtocol uintptr
}

// ActivatePackaged launches a store-packaged browser through the shell's
// application activation manager. Packaged apps cannot be exec'd by path;
// the activation manager resolves the AUMID and starts the app outside
// the connector's job object, so no further detach work is needed.
func ActivatePackaged(packageID string, args []string) error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		// S_FALSE: COM was already initialized on this thread
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != 1 {
			return &COMError{Message: err.Error()}
		}
	}
	defer ole.CoUninitialize()

	unknown, err := ole.CreateInstance(clsidApplicationActivationManager, iidIApplicationActivationManager)
	if err != nil {
		return &COMError{Message: err.Error()}
	}
	aam := (*iApplicationActivationManager)(unsafe.Pointer(unknown))
	defer aam.Release()

	aumid := packageID + "!App"
	serialized := SerializeActivationArgs(args)
	clio.Debugf("activating %s with args: %s", aumid, serialized)

	aumidPtr, err := windows.UTF16PtrFromString(aumid)
	if err != nil {
		return &MSIXLaunchError{Message: err.Error()}
	}
	argsPtr, err := windows.UTF16PtrFromString(serialized)
	if err != nil {
		return &MSIXLaunchError{Message: err.Error()}
	}

	vtbl := (*iApplicationActivationManagerVtbl)(unsafe.Pointer(aam.RawVTable))

	var processID uint32
	hr, _, _ := syscall.SyscallN(
		vtbl.ActivateApplication,
		uintptr(unsafe.Pointer(aam)),
		uintptr(unsafe.Pointer(aumidPtr)),
		uintptr(unsafe.Pointer(argsPtr)),
		0, // AO_NONE
		uintptr(unsafe.Pointer(&processID)),
	)
	if hr != 0 {
		return &MSIXLaunchError{Message: ole.NewError(hr).Error()}
	}
	return nil
}
