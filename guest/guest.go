package guest

import (
	"errors"
	"fmt"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
	"google.golang.org/protobuf/encoding/protowire"

	ffi "github.com/tarmac-project/ffi"
)

const (
	capabilityName     = "callback"
	fnConnectionStatus = "connection_status"

	// Wire fields of the delivery payload: two length-delimited strings.
	fieldResult = 1
	fieldErrMsg = 2

	hostStatusOK = int32(200)
)

// HostCall defines the waPC host function signature used for deliveries.
type HostCall func(string, string, string, []byte) ([]byte, error)

// ensure Notifier satisfies the delivery interface
var _ ffi.Notifier = (*Notifier)(nil)

// Config controls how a Notifier instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig ffi.RuntimeConfig

	// HostCall overrides the waPC host function used for deliveries.
	HostCall HostCall
}

// Notifier delivers (result, error) pairs to the host callback capability.
type Notifier struct {
	runtime  ffi.RuntimeConfig
	hostCall HostCall
}

// New creates a Notifier that delivers through the configured host call.
func New(config Config) (*Notifier, error) {
	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = ffi.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &Notifier{runtime: runtime, hostCall: hostCall}, nil
}

// Notify frames the pair and forwards it to the host, returning an error if
// the host call fails or the host reports a non-success status.
func (n *Notifier) Notify(result string, errMsg string) error {
	payload := marshalStatusPair(result, errMsg)

	respBytes, callErr := n.hostCall(n.runtime.Namespace, capabilityName, fnConnectionStatus, payload)
	if callErr != nil && len(respBytes) == 0 {
		return errors.Join(ffi.ErrHostCall, callErr)
	}

	var ack sdkproto.Status
	if unmarshalErr := ack.UnmarshalVT(respBytes); unmarshalErr != nil {
		if callErr != nil {
			return errors.Join(ffi.ErrHostCall, callErr, ffi.ErrHostResponseInvalid, unmarshalErr)
		}
		return errors.Join(ffi.ErrHostResponseInvalid, unmarshalErr)
	}

	return validateAck(&ack, callErr)
}

// NotifyStatus validates the status convention before delivering it.
func (n *Notifier) NotifyStatus(status ffi.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	return n.Notify(status.Result, status.ErrMsg)
}

// Close releases resources held by the notifier.
func (n *Notifier) Close() error {
	_ = n
	return nil
}

// marshalStatusPair frames the two strings as protobuf wire fields 1 and 2.
// Both fields are always present so the host can distinguish an empty slot
// from an omitted one.
func marshalStatusPair(result string, errMsg string) []byte {
	b := protowire.AppendTag(nil, fieldResult, protowire.BytesType)
	b = protowire.AppendString(b, result)
	b = protowire.AppendTag(b, fieldErrMsg, protowire.BytesType)
	b = protowire.AppendString(b, errMsg)
	return b
}

func validateAck(ack *sdkproto.Status, callErr error) error {
	code := ack.GetCode()
	if code == hostStatusOK {
		return nil
	}

	detail := fmt.Sprintf("host status %d", code)
	if msg := ack.GetStatus(); msg != "" {
		detail = fmt.Sprintf("%s: %s", detail, msg)
	}
	if callErr != nil {
		return errors.Join(ffi.ErrHostCall, callErr, ffi.ErrHostError, errors.New(detail))
	}
	return errors.Join(ffi.ErrHostError, errors.New(detail))
}
