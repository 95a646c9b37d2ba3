package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// Is reports whether target is the error kind of e, so errors.Is(err, ErrNotFound) works
// on wrapped errors whose orig is some lower level error.
func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

// ErrorCode returns the kind of err, or nil when err was not produced by WrapErrorf.
func ErrorCode(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return nil
}

var (
	ErrInputUnreadable = errors.New("input grid is missing or unreadable")
	ErrInvalidInput    = errors.New("given input is not valid")
	ErrNotFound        = errors.New("your requested Item is not found")
)

func MaxG[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

func AssertPanic(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

// ReadLine reads one line without its trailing "\n" or "\r\n". A final line with no newline is
// returned with a nil error; io.EOF is only returned once nothing is left.
func ReadLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
		} else if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
