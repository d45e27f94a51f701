package ffi

import (
	"errors"
	"testing"
)

func TestStatusValidate(t *testing.T) {
	testCases := []struct {
		name    string
		status  Status
		wantErr error
	}{
		{
			name:    "success payload only",
			status:  OK("host=/cloudsql/p:r:i user=app"),
			wantErr: nil,
		},
		{
			name:    "error message only",
			status:  Failure("dial tcp: i/o timeout"),
			wantErr: nil,
		},
		{
			name:    "both populated",
			status:  Status{Result: "ok", ErrMsg: "boom"},
			wantErr: ErrStatusConflict,
		},
		{
			name:    "both empty",
			status:  Status{},
			wantErr: ErrStatusEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.status.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestStatusFailed(t *testing.T) {
	if OK("connected").Failed() {
		t.Fatal("success status reported as failed")
	}
	if !Failure("boom").Failed() {
		t.Fatal("failure status not reported as failed")
	}
}
