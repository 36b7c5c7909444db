package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil error": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(ErrUnauthorized, "no arbiter permission"),
			wantCode: ErrUnauthorized.ABCICode(),
			wantLog:  "no arbiter permission: unauthorized",
		},
		"stdlib error is silenced": {
			err:      stderrors.New("secret detail"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib error in debug mode": {
			err:      stderrors.New("secret detail"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "secret detail",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want code %d, got %d", tc.wantCode, code)
			}
			if !strings.HasPrefix(log, tc.wantLog) {
				t.Errorf("want log %q, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if got := Redact(ErrPanic); abciCode(got) != internalABCICode {
		t.Errorf("exposing a panic error detail: %+v", got)
	}
	if got := Redact(ErrUnauthorized); !ErrUnauthorized.Is(got) {
		t.Errorf("unauthorized error must not be redacted: %+v", got)
	}
}
