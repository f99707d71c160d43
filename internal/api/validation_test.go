package api

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestRegisterOn(t *testing.T) {
	cases := []struct {
		name    string
		engine  any
		wantErr bool
	}{
		{name: "validator engine", engine: validator.New(), wantErr: false},
		{name: "foreign engine", engine: struct{}{}, wantErr: true},
		{name: "nil engine", engine: nil, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := registerOn(tc.engine); (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegisterValidators_RepeatsFirstOutcome(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	old := registerErr
	registerErr = errors.New("engine rejected tag")
	t.Cleanup(func() { registerErr = old })

	for i := 0; i < 2; i++ {
		if err := RegisterValidators(); err == nil {
			t.Fatalf("call %d: stored registration error was dropped", i+1)
		}
	}
}
