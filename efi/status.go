package efi

import "math/bits"

// Status is an EFI_STATUS: a native-width value whose top bit marks an
// error.
type Status uint64

// ErrorBit is set in every error status.
const ErrorBit Status = 1 << (bits.UintSize - 1)

const (
	Success             Status = 0
	LoadError           Status = ErrorBit | 1
	InvalidParameter    Status = ErrorBit | 2
	Unsupported         Status = ErrorBit | 3
	BadBufferSize       Status = ErrorBit | 4
	BufferTooSmall      Status = ErrorBit | 5
	NotReady            Status = ErrorBit | 6
	DeviceError         Status = ErrorBit | 7
	WriteProtected      Status = ErrorBit | 8
	OutOfResources      Status = ErrorBit | 9
	VolumeCorrupted     Status = ErrorBit | 10
	VolumeFull          Status = ErrorBit | 11
	NoMedia             Status = ErrorBit | 12
	MediaChanged        Status = ErrorBit | 13
	NotFound            Status = ErrorBit | 14
	AccessDenied        Status = ErrorBit | 15
	NoResponse          Status = ErrorBit | 16
	NoMapping           Status = ErrorBit | 17
	Timeout             Status = ErrorBit | 18
	NotStarted          Status = ErrorBit | 19
	AlreadyStarted      Status = ErrorBit | 20
	Aborted             Status = ErrorBit | 21
	ICMPError           Status = ErrorBit | 22
	TFTPError           Status = ErrorBit | 23
	ProtocolError       Status = ErrorBit | 24
	IncompatibleVersion Status = ErrorBit | 25
	SecurityViolation   Status = ErrorBit | 26
	CRCError            Status = ErrorBit | 27
	EndOfMedia          Status = ErrorBit | 28
	EndOfFile           Status = ErrorBit | 31
	InvalidLanguage     Status = ErrorBit | 32
	CompromisedData     Status = ErrorBit | 33
	IPAddressConflict   Status = ErrorBit | 34
	HTTPError           Status = ErrorBit | 35
)

// Warnings have the error bit clear.
const (
	WarnUnknownGlyph   Status = 1
	WarnDeleteFailure  Status = 2
	WarnWriteFailure   Status = 3
	WarnBufferTooSmall Status = 4
	WarnStaleData      Status = 5
	WarnFileSystem     Status = 6
	WarnResetRequired  Status = 7
)

var statusText = map[Status]string{
	Success:             "Success",
	LoadError:           "Load error",
	InvalidParameter:    "Invalid parameter",
	Unsupported:         "Unsupported",
	BadBufferSize:       "Bad buffer size",
	BufferTooSmall:      "Buffer too small",
	NotReady:            "Not ready",
	DeviceError:         "Device error",
	WriteProtected:      "Write protected",
	OutOfResources:      "Out of resources",
	VolumeCorrupted:     "Volume corrupt",
	VolumeFull:          "Volume full",
	NoMedia:             "No media",
	MediaChanged:        "Media changed",
	NotFound:            "Not found",
	AccessDenied:        "Access denied",
	NoResponse:          "No response",
	NoMapping:           "No mapping",
	Timeout:             "Time out",
	NotStarted:          "Not started",
	AlreadyStarted:      "Already started",
	Aborted:             "Aborted",
	ICMPError:           "ICMP error",
	TFTPError:           "TFTP error",
	ProtocolError:       "Protocol error",
	IncompatibleVersion: "Incompatible version",
	SecurityViolation:   "Security policy violation",
	CRCError:            "CRC error",
	EndOfMedia:          "End of media",
	EndOfFile:           "End of file",
	InvalidLanguage:     "Invalid languages",
	CompromisedData:     "Compromised data",
	IPAddressConflict:   "IP address conflict",
	HTTPError:           "HTTP error",
	WarnUnknownGlyph:    "Warning Unknown Glyph",
	WarnDeleteFailure:   "Warning Delete Failure",
	WarnWriteFailure:    "Warning Write Failure",
	WarnBufferTooSmall:  "Warning Buffer Too Small",
	WarnStaleData:       "Warning Stale Data",
	WarnFileSystem:      "Warning File System",
	WarnResetRequired:   "Warning Reset Required",
}

// IsError reports whether s has the error bit set.
func (s Status) IsError() bool { return s&ErrorBit != 0 }

// Text returns the description of a known status.
func (s Status) Text() (string, bool) {
	t, ok := statusText[s]
	return t, ok
}

// Error implements error, so a Status can be returned and matched with
// errors.Is.
func (s Status) Error() string {
	if t, ok := s.Text(); ok {
		return t
	}
	return "unknown EFI status"
}

// Err returns nil for Success and s otherwise.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return s
}
