package ollama

import "testing"

func TestUnmarshalJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bare object", `{"probability": 0.5}`, false},
		{"object with prose around it", "Sure! Here is the result:\n{\"probability\": 0.5}\nLet me know.", false},
		{"code fence", "```json\n{\"probability\": 0.5}\n```", false},
		{"no object", "I cannot answer that.", true},
		{"empty", "", true},
		{"broken braces", "} {", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result AIDetectionResult
			err := unmarshalJSONObject(tt.input, &result)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if !tt.wantErr && result.Probability != 0.5 {
				t.Errorf("probability = %.2f, want 0.5", result.Probability)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"below", -2, -1, 1, -1},
		{"above", 150, 0, 100, 100},
		{"inside", 0.3, 0, 1, 0.3},
		{"at bound", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New("", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.model != DefaultModel {
		t.Errorf("model = %s, want %s", c.model, DefaultModel)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.timeout, DefaultTimeout)
	}

	c.SetTimeout(0)
	if c.timeout != DefaultTimeout {
		t.Error("non-positive timeout must be ignored")
	}
}
