package advisor

import (
	"strings"
	"testing"
)

func TestParseTips(t *testing.T) {
	tips, err := ParseTips(`["Tip one.", "Tip two."]`)
	if err != nil {
		t.Fatalf("ParseTips: %v", err)
	}
	if len(tips) != 2 || tips[0] != "Tip one." {
		t.Errorf("tips = %v", tips)
	}
}

func TestParseTipsStripsCodeFences(t *testing.T) {
	fenced := "```json\n[\"Tip one.\"]\n```"
	tips, err := ParseTips(fenced)
	if err != nil {
		t.Fatalf("ParseTips: %v", err)
	}
	if len(tips) != 1 || tips[0] != "Tip one." {
		t.Errorf("tips = %v", tips)
	}

	bare := "```\n[\"Tip one.\"]\n```"
	if _, err := ParseTips(bare); err != nil {
		t.Errorf("bare fence should parse: %v", err)
	}
}

func TestParseTipsTrimsWhitespace(t *testing.T) {
	tips, err := ParseTips(`["  Tip one.  "]`)
	if err != nil {
		t.Fatalf("ParseTips: %v", err)
	}
	if tips[0] != "Tip one." {
		t.Errorf("tip not trimmed: %q", tips[0])
	}
}

func TestParseTipsRejectsBadInput(t *testing.T) {
	if _, err := ParseTips("not json"); err == nil {
		t.Error("non-JSON input should fail")
	}
	if _, err := ParseTips(`{"tips": []}`); err == nil {
		t.Error("JSON object should fail, array expected")
	}
	if _, err := ParseTips(`[]`); err == nil {
		t.Error("empty array should fail")
	}
	if _, err := ParseTips(`["ok", "  "]`); err == nil {
		t.Error("blank tip should fail")
	}
}

func TestParseTipsTruncatesLongLists(t *testing.T) {
	var parts []string
	for i := 0; i < 15; i++ {
		parts = append(parts, `"Tip"`)
	}
	tips, err := ParseTips("[" + strings.Join(parts, ",") + "]")
	if err != nil {
		t.Fatalf("ParseTips: %v", err)
	}
	if len(tips) != maxTips {
		t.Errorf("got %d tips, want %d", len(tips), maxTips)
	}
}
