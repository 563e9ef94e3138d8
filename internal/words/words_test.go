package words

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeWordFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write word file: %v", err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
		wantErr  bool
	}{
		{
			name:     "plain words",
			contents: "cat\ndog\nbird\n",
			want:     []string{"cat", "dog", "bird"},
		},
		{
			name:     "comments and blanks skipped",
			contents: "# header\ncat\n\ndog\n",
			want:     []string{"cat", "dog"},
		},
		{
			name:     "uppercase lowered, duplicates dropped",
			contents: "CAT\ncat\nDog\n",
			want:     []string{"cat", "dog"},
		},
		{
			name:     "non-letter rejected",
			contents: "cat\ndon't\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWordFile(t, tt.contents)
			got, err := FromFile(context.Background(), path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FromFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := FromFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" CAT ", "dog", "cat", "", "Dog"})
	want := []string{"cat", "dog"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}
