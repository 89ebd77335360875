package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("alice\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Username", &out)
	if err != nil || got != "alice" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Username", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_StopsOnEmptyLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("line one\nline two\n\n"))
	var out bytes.Buffer
	got, err := GetMultiline(in, "Message body", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "line one\nline two"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_ReturnsBytes(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("secret1"), nil
	}
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil || string(pw) != "secret1" {
		t.Fatalf("got %q, err=%v", pw, err)
	}
}
