package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestForcedApprover_ApprovesAfterCountdown(t *testing.T) {
	var output bytes.Buffer
	sleepCalls := 0

	approver := &ForcedApprover{
		output: &output,
		sleepFn: func(d time.Duration) {
			sleepCalls++
		},
	}

	approved, err := approver.RequestApproval(context.Background(), "F_CORE_101")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Fatal("Expected approval after countdown")
	}
	if sleepCalls != 5 {
		t.Errorf("Expected 5 sleep calls (one per second), got %d", sleepCalls)
	}
}

func TestForcedApprover_OutputContainsBranchName(t *testing.T) {
	var output bytes.Buffer

	approver := &ForcedApprover{
		output:  &output,
		sleepFn: func(time.Duration) {},
	}

	_, _ = approver.RequestApproval(context.Background(), "F_PAYROLL_7")

	out := output.String()
	if !strings.Contains(out, "F_PAYROLL_7") {
		t.Errorf("Expected output to contain branch name, got:\n%s", out)
	}
	if !strings.Contains(out, "Pushing branch to origin") {
		t.Errorf("Expected output to contain proceeding message, got:\n%s", out)
	}
}

func TestForcedApprover_ContextCancellation(t *testing.T) {
	var output bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approver := &ForcedApprover{
		output:  &output,
		sleepFn: func(time.Duration) {},
	}

	approved, err := approver.RequestApproval(ctx, "F_X")
	if err == nil {
		t.Fatal("Expected context error")
	}
	if approved {
		t.Error("Cancelled approval must not approve")
	}
}

func TestInteractiveApprover_MatchingInput(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("F_CORE_101\n"),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "F_CORE_101")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Error("Expected approval for matching input")
	}
}

func TestInteractiveApprover_CaseInsensitiveMatch(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("f_core_101\n"),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "F_CORE_101")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Error("Expected approval for case-insensitive match")
	}
}

func TestInteractiveApprover_MismatchDenies(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("something else\n"),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "F_CORE_101")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if approved {
		t.Error("Expected denial for mismatched input")
	}
	if !strings.Contains(output.String(), "cancelled") {
		t.Errorf("Expected cancellation notice, got:\n%s", output.String())
	}
}

func TestInteractiveApprover_EOFIsError(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader(""),
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "F_X")
	if err == nil {
		t.Fatal("Expected error on EOF")
	}
	if approved {
		t.Error("EOF must not approve")
	}
}
