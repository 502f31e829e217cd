package justify

import (
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/occkernel/internal/model"
)

func TestCheck(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name          string
		justification string
		wantReject    bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t\n  ", true},
		{"too short", "fixing prod", true},
		{"template exact", "approved as per policy", true},
		{"template with case and punctuation", "  Approved As Per POLICY.  ", true},
		{"template lgtm", "LGTM", true},
		{"long but repetitive", strings.Repeat("approve ", 10), true},
		{"multibyte short despite byte length", "αβγ δεζ ηθι κλμ", true},
		{"multibyte genuine reasoning", "проверил выписку банка, суммы сходятся с отчётом сверки", false},
		{"genuine reasoning", "payment batch 4521 stuck after the gateway timeout, retry window closes at 14:00 UTC", false},
		{"exactly at limits", "resolve incident 9912 today", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.Check(tt.justification)
			if tt.wantReject && err == nil {
				t.Errorf("Check(%q) accepted", tt.justification)
			}
			if !tt.wantReject && err != nil {
				t.Errorf("Check(%q) rejected: %v", tt.justification, err)
			}
			if err != nil {
				var jr *model.JustificationRejectedError
				if !errors.As(err, &jr) {
					t.Errorf("rejection is %T, want JustificationRejectedError", err)
				}
			}
		})
	}
}

func TestCheckCustomRules(t *testing.T) {
	rules := Rules{MinLength: 5, MinDistinctWords: 2, Templates: []string{"because reasons"}}

	if err := rules.Check("short note"); err != nil {
		t.Errorf("relaxed rules rejected: %v", err)
	}
	if err := rules.Check("Because Reasons!"); err == nil {
		t.Error("custom template not matched")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Hello   World  ", "hello world"},
		{"LGTM!!!", "lgtm"},
		{"ok to proceed.", "ok to proceed"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
