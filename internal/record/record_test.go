package record

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "keyed record",
			line: "id007\thello world\n",
			want: Record{ID: "id007", Keyed: true, Payload: "hello world"},
		},
		{
			name: "plain line",
			line: "  hello world  \n",
			want: Record{Payload: "hello world"},
		},
		{
			name: "only the first tab separates",
			line: "id1\ta\tb\tc",
			want: Record{ID: "id1", Keyed: true, Payload: "a\tb\tc"},
		},
		{
			name: "empty id",
			line: " \tpayload",
			want: Record{ID: "", Keyed: true, Payload: "payload"},
		},
		{
			name: "leading tab is stripped before the split",
			line: "\tpayload",
			want: Record{Payload: "payload"},
		},
		{
			name: "trailing tab is stripped before the split",
			line: "payload\t\n",
			want: Record{Payload: "payload"},
		},
		{
			name: "keyed record needs content after the tab",
			line: "id\t \t",
			want: Record{Payload: "id"},
		},
		{
			name: "payload keeps inner spacing",
			line: "id\t   .  ",
			want: Record{ID: "id", Keyed: true, Payload: "   ."},
		},
		{
			name: "empty line",
			line: "\n",
			want: Record{},
		},
		{
			name: "windows line ending",
			line: "id\tपाठ\r\n",
			want: Record{ID: "id", Keyed: true, Payload: "पाठ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.line); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		rec  Record
		want string
	}{
		{Record{ID: "id007", Keyed: true, Payload: "नमस्ते दुनिया"}, "id007\tनमस्ते दुनिया\n"},
		{Record{Payload: "नमस्ते"}, "नमस्ते\n"},
		{Record{ID: "", Keyed: true, Payload: "x"}, "\tx\n"},
		{Record{Payload: ""}, "\n"},
	}
	for _, tt := range tests {
		if got := tt.rec.Format(); got != tt.want {
			t.Errorf("Format(%+v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestWithPayloadKeepsID(t *testing.T) {
	rec := Parse("id007\thello world").WithPayload("HELLO")
	if got := rec.Format(); got != "id007\tHELLO\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestBlank(t *testing.T) {
	tests := []struct {
		payload string
		want    bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" x ", false},
	}
	for _, tt := range tests {
		if got := (Record{ID: "id", Keyed: true, Payload: tt.payload}).Blank(); got != tt.want {
			t.Errorf("Blank(%q) = %v, want %v", tt.payload, got, tt.want)
		}
	}
}
