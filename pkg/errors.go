package pkg

import "fmt"

type ErrDBProcedure struct {
	Cause string
	Info  string
	Err   error
}

func (e ErrDBProcedure) Error() string {
	return fmt.Sprintf("%s; got error: %s; info: %s", e.Cause, e.Err, e.Info)
}

func (e ErrDBProcedure) Unwrap() error {
	return e.Err
}

type ErrExternalCall struct {
	Service string
	Err     error
}

func (e ErrExternalCall) Error() string {
	return fmt.Sprintf("%s call failed: %s", e.Service, e.Err)
}

func (e ErrExternalCall) Unwrap() error {
	return e.Err
}
