package validation

import (
	"strings"
	"testing"
)

type sampleInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,contact_subject"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
}

func validSample() sampleInput {
	return sampleInput{Name: "Jane Doe", Email: "jane@example.com", Subject: "GENERAL"}
}

// ---------------------------------------------------------------------------
// Validate tests
// ---------------------------------------------------------------------------

func TestValidate_ValidInput(t *testing.T) {
	if fields := Validate(validSample()); fields != nil {
		t.Errorf("expected nil for valid input, got %v", fields)
	}
}

// TestValidate_LengthBoundaries verifies values exactly at the limits
// are accepted.
func TestValidate_LengthBoundaries(t *testing.T) {
	in := validSample()
	in.Name = "Jo"
	if fields := Validate(in); fields != nil {
		t.Errorf("expected a 2-character name to pass, got %v", fields)
	}

	in = validSample()
	in.Name = strings.Repeat("a", 100)
	in.Phone = strings.Repeat("1", 20)
	if fields := Validate(in); fields != nil {
		t.Errorf("expected max-length fields to pass, got %v", fields)
	}
}

// TestValidate_KeysByJSONTag verifies field errors are keyed with the
// json wire name, not the Go field name.
func TestValidate_KeysByJSONTag(t *testing.T) {
	in := validSample()
	in.Email = "nope"
	fields := Validate(in)
	if fields == nil {
		t.Fatal("expected a validation error")
	}
	if _, ok := fields["email"]; !ok {
		t.Errorf("expected key email, got %v", fields)
	}
	if _, ok := fields["Email"]; ok {
		t.Errorf("expected no Go field name key, got %v", fields)
	}
}

func TestValidate_Messages(t *testing.T) {
	cases := []struct {
		mutate func(*sampleInput)
		field  string
		want   string
	}{
		{func(in *sampleInput) { in.Name = "" }, "name", "This field is required"},
		{func(in *sampleInput) { in.Name = "J" }, "name", "Must be at least 2 characters"},
		{func(in *sampleInput) { in.Name = strings.Repeat("a", 101) }, "name", "Must be at most 100 characters"},
		{func(in *sampleInput) { in.Email = "not-an-email" }, "email", "Enter a valid email address"},
		{func(in *sampleInput) { in.Phone = strings.Repeat("1", 21) }, "phone", "Must be at most 20 characters"},
		{
			func(in *sampleInput) { in.Subject = "SPAM" },
			"subject",
			"Invalid subject. Valid choices are: GENERAL, PROGRAM, VOLUNTEER, DONATION, FEEDBACK, OTHER",
		},
	}
	for _, c := range cases {
		in := validSample()
		c.mutate(&in)
		fields := Validate(in)
		if fields == nil {
			t.Errorf("field %s: expected a validation error", c.field)
			continue
		}
		if got := fields[c.field]; got != c.want {
			t.Errorf("field %s: got %q, want %q", c.field, got, c.want)
		}
	}
}

func TestValidate_CollectsAllFields(t *testing.T) {
	in := sampleInput{Name: "J", Email: "bad", Subject: "NOPE"}
	fields := Validate(in)
	if fields == nil {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{"name", "email", "subject"} {
		if fields[field] == "" {
			t.Errorf("expected error for field %q, got %v", field, fields)
		}
	}
}

func TestValidate_OmitemptySkipsBlank(t *testing.T) {
	in := validSample()
	in.Phone = ""
	if fields := Validate(in); fields != nil {
		t.Errorf("expected blank optional field to pass, got %v", fields)
	}
}

func TestValidate_PositionAndTypeTags(t *testing.T) {
	type officialInput struct {
		Position     string `json:"position" validate:"required,official_position"`
		OfficialType string `json:"official_type" validate:"required,official_type"`
	}

	fields := Validate(officialInput{Position: "KING", OfficialType: "ROYALTY"})
	if fields == nil {
		t.Fatal("expected validation errors")
	}
	if fields["position"] != "Invalid position. Valid choices are: CHAIRMAN, VICE_CHAIRMAN, COORDINATOR" {
		t.Errorf("unexpected position message: %q", fields["position"])
	}
	if fields["official_type"] != "Invalid official type. Valid choices are: BOARD, STAFF, VOLUNTEER, ADVISOR, ADMIN" {
		t.Errorf("unexpected official_type message: %q", fields["official_type"])
	}

	if fields := Validate(officialInput{Position: "VICE_CHAIRMAN", OfficialType: "ADVISOR"}); fields != nil {
		t.Errorf("expected valid enums to pass, got %v", fields)
	}
}

// TestValidate_PointerFields verifies optional pointer fields are only
// checked when present.
func TestValidate_PointerFields(t *testing.T) {
	type patchInput struct {
		Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	}

	if fields := Validate(patchInput{}); fields != nil {
		t.Errorf("expected nil pointer to pass, got %v", fields)
	}

	empty := ""
	fields := Validate(patchInput{Name: &empty})
	if fields == nil || fields["name"] == "" {
		t.Errorf("expected error for empty present name, got %v", fields)
	}
}

// ---------------------------------------------------------------------------
// NormalizeEmail tests
// ---------------------------------------------------------------------------

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jane@Example.COM", "jane@example.com"},
		{"  jane@example.com  ", "jane@example.com"},
		{" MIXED@Case.Org ", "mixed@case.org"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeEmail(c.in); got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
