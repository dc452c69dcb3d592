package utils

import "testing"

func TestGetEnvAsInt(t *testing.T) {
	if got := GetEnvAsInt("ARTEVA_TEST_UNSET", 8080, nil); got != 8080 {
		t.Errorf("unset var should yield default, got %d", got)
	}

	t.Setenv("ARTEVA_TEST_PORT", "9090")
	if got := GetEnvAsInt("ARTEVA_TEST_PORT", 8080, nil); got != 9090 {
		t.Errorf("expected 9090, got %d", got)
	}

	t.Setenv("ARTEVA_TEST_PORT", "not-a-number")
	if got := GetEnvAsInt("ARTEVA_TEST_PORT", 8080, nil); got != 8080 {
		t.Errorf("garbage value should yield default, got %d", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	if GetEnvAsBool("ARTEVA_TEST_UNSET", false, nil) {
		t.Error("unset var should yield default")
	}
	t.Setenv("ARTEVA_TEST_FLAG", "true")
	if !GetEnvAsBool("ARTEVA_TEST_FLAG", false, nil) {
		t.Error("expected true")
	}
}
