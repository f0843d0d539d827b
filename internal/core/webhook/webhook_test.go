package webhook

import (
	"encoding/base64"
	"net/url"
	"testing"
)

const pingJSON = `{
  "zen": "Design for failure.",
  "hook_id": 1,
  "repository": {
    "full_name": "luca-rand/testing",
    "description": "Move along, just for testing",
    "stargazers_count": 2
  }
}`

func formBody(payload string) []byte {
	v := url.Values{}
	v.Set("payload", payload)
	return []byte(base64.StdEncoding.EncodeToString([]byte(v.Encode())))
}

func TestEncodingOf(t *testing.T) {
	cases := map[string]Encoding{
		"application/json":                                 EncodingJSON,
		"application/json; charset=utf-8":                  EncodingJSON,
		"application/x-www-form-urlencoded":                EncodingForm,
		"Application/X-WWW-Form-Urlencoded; charset=utf-8": EncodingForm,
		"":                                                 EncodingJSON,
		"not a;;type":                                      EncodingJSON,
	}
	for ct, want := range cases {
		if got := EncodingOf(ct); got != want {
			t.Errorf("EncodingOf(%q) = %v, want %v", ct, got, want)
		}
	}
}

func TestDecode_JSONAndFormAgree(t *testing.T) {
	want := Event{
		Kind:        KindPing,
		Repository:  "luca-rand/testing",
		Description: "Move along, just for testing",
		Stars:       2,
	}

	got, err := Decode(KindPing, EncodingJSON, []byte(pingJSON))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if got != want {
		t.Fatalf("json event = %+v, want %+v", got, want)
	}

	got, err = Decode(KindPing, EncodingForm, formBody(pingJSON))
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if got != want {
		t.Fatalf("form event = %+v, want %+v", got, want)
	}
}

func TestDecode_TagFieldsAndNullDescription(t *testing.T) {
	body := `{"ref":"v1.0.0","ref_type":"tag","repository":{"full_name":"a/b","description":null}}`
	ev, err := Decode(KindCreate, EncodingJSON, []byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ev.Ref != "v1.0.0" || ev.RefType != "tag" || ev.Description != "" || ev.Stars != 0 {
		t.Fatalf("event = %+v", ev)
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := []struct {
		name string
		enc  Encoding
		body []byte
	}{
		{"empty", EncodingJSON, nil},
		{"not json", EncodingJSON, []byte("{")},
		{"trailing data", EncodingJSON, []byte(pingJSON + "{}")},
		{"no repository", EncodingJSON, []byte(`{"zen":"x"}`)},
		{"no full name", EncodingJSON, []byte(`{"repository":{"description":"x"}}`)},
		{"bad base64", EncodingForm, []byte("%%%")},
		{"no payload field", EncodingForm, []byte(base64.StdEncoding.EncodeToString([]byte("other=1")))},
		{"payload not json", EncodingForm, formBody("nope")},
		{"raw json sent as form", EncodingForm, []byte(pingJSON)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(KindPing, tc.enc, tc.body)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !IsMalformed(err) {
				t.Fatalf("error should be malformed payload, got %v", err)
			}
		})
	}
}
