package guest

import (
	"errors"
	"reflect"
	"testing"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	"github.com/tarmac-project/sdk/hostmock"
	"google.golang.org/protobuf/encoding/protowire"

	ffi "github.com/tarmac-project/ffi"
)

// decodePair unpacks the delivery payload framed by marshalStatusPair.
func decodePair(payload []byte) (string, string, error) {
	var result, errMsg string

	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			return "", "", protowire.ParseError(n)
		}
		payload = payload[n:]

		if typ != protowire.BytesType {
			return "", "", errors.New("unexpected wire type")
		}

		value, n := protowire.ConsumeBytes(payload)
		if n < 0 {
			return "", "", protowire.ParseError(n)
		}
		payload = payload[n:]

		switch num {
		case fieldResult:
			result = string(value)
		case fieldErrMsg:
			errMsg = string(value)
		default:
			return "", "", errors.New("unexpected field number")
		}
	}

	return result, errMsg, nil
}

func okAck() []byte {
	ack := &sdkproto.Status{Status: "OK", Code: 200}
	b, _ := ack.MarshalVT()
	return b
}

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		namespace   string
		hostCall    HostCall
		wantNS      string
		wantHostPtr uintptr
	}{
		{
			name:      "custom namespace",
			namespace: "custom",
			wantNS:    "custom",
		},
		{
			name:        "default namespace with override",
			hostCall:    customHostCall,
			wantNS:      ffi.DefaultNamespace,
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n, err := New(Config{SDKConfig: ffi.RuntimeConfig{Namespace: tc.namespace}, HostCall: tc.hostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			if n.runtime.Namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, n.runtime.Namespace)
			}

			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(n.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestNotify(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		result  string
		errMsg  string
		hostCfg hostmock.Config
		wantErr error
	}{
		{
			name:   "happy path",
			result: "host=/cloudsql/p:r:i user=app",
			errMsg: "",
			hostCfg: hostmock.Config{
				ExpectedNamespace:  "cloudsql",
				ExpectedCapability: capabilityName,
				ExpectedFunction:   fnConnectionStatus,
				PayloadValidator: func(payload []byte) error {
					result, errMsg, err := decodePair(payload)
					if err != nil {
						return err
					}
					if result != "host=/cloudsql/p:r:i user=app" || errMsg != "" {
						return errors.New("payload mismatch")
					}
					return nil
				},
				Response: okAck,
			},
		},
		{
			name:   "error delivery",
			result: "",
			errMsg: "dial tcp: i/o timeout",
			hostCfg: hostmock.Config{
				ExpectedNamespace:  "cloudsql",
				ExpectedCapability: capabilityName,
				ExpectedFunction:   fnConnectionStatus,
				PayloadValidator: func(payload []byte) error {
					result, errMsg, err := decodePair(payload)
					if err != nil {
						return err
					}
					if result != "" || errMsg != "dial tcp: i/o timeout" {
						return errors.New("payload mismatch")
					}
					return nil
				},
				Response: okAck,
			},
		},
		{
			name:   "host failure",
			result: "ok",
			hostCfg: hostmock.Config{
				ExpectedNamespace:  "cloudsql",
				ExpectedCapability: capabilityName,
				ExpectedFunction:   fnConnectionStatus,
				Fail:               true,
				Error:              errors.New("boom"),
			},
			wantErr: ffi.ErrHostCall,
		},
		{
			name:   "host error status",
			result: "ok",
			hostCfg: hostmock.Config{
				ExpectedNamespace:  "cloudsql",
				ExpectedCapability: capabilityName,
				ExpectedFunction:   fnConnectionStatus,
				Response: func() []byte {
					ack := &sdkproto.Status{Status: "no callback registered", Code: 404}
					b, _ := ack.MarshalVT()
					return b
				},
			},
			wantErr: ffi.ErrHostError,
		},
		{
			name:   "unparseable acknowledgement",
			result: "ok",
			hostCfg: hostmock.Config{
				ExpectedNamespace:  "cloudsql",
				ExpectedCapability: capabilityName,
				ExpectedFunction:   fnConnectionStatus,
				Response: func() []byte {
					return []byte{0xff, 0xff, 0xff}
				},
			},
			wantErr: ffi.ErrHostResponseInvalid,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := hostmock.New(tc.hostCfg)
			if err != nil {
				t.Fatalf("failed to create hostmock: %v", err)
			}

			n, err := New(Config{
				SDKConfig: ffi.RuntimeConfig{Namespace: "cloudsql"},
				HostCall:  mock.HostCall,
			})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			defer func() {
				if closeErr := n.Close(); closeErr != nil {
					t.Fatalf("Close returned error: %v", closeErr)
				}
			}()

			gotErr := n.Notify(tc.result, tc.errMsg)
			if !errors.Is(gotErr, tc.wantErr) {
				t.Fatalf("unexpected error: want %v, got %v", tc.wantErr, gotErr)
			}
		})
	}
}

func TestNotifyStatus(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{
		ExpectedNamespace:  ffi.DefaultNamespace,
		ExpectedCapability: capabilityName,
		ExpectedFunction:   fnConnectionStatus,
		Response:           okAck,
	})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	n, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tt := []struct {
		name    string
		status  ffi.Status
		wantErr error
	}{
		{name: "success", status: ffi.OK("host=/cloudsql/db")},
		{name: "failure", status: ffi.Failure("dial tcp: i/o timeout")},
		{name: "both populated", status: ffi.Status{Result: "x", ErrMsg: "y"}, wantErr: ffi.ErrStatusConflict},
		{name: "both empty", status: ffi.Status{}, wantErr: ffi.ErrStatusEmpty},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if gotErr := n.NotifyStatus(tc.status); !errors.Is(gotErr, tc.wantErr) {
				t.Fatalf("unexpected error: want %v, got %v", tc.wantErr, gotErr)
			}
		})
	}
}
