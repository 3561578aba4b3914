package logging

import "testing"

func TestGetReturnsNonNilLogger(t *testing.T) {
	if Get("test") == nil {
		t.Fatal("Get() returned a nil logger")
	}
}
