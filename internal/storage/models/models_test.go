package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"profile_images", ProfileImages, false},
		{"PROFILE_IMAGES", ProfileImages, false},
		{"profile-images", ProfileImages, false},
		{"profile_cvs", ProfileCVs, false},
		{"PROFILE_CVS", ProfileCVs, false},
		{"avatars", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCategory(%q) must fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategoryFolder(t *testing.T) {
	if ProfileImages.Folder() != "profile_images" {
		t.Errorf("unexpected folder: %s", ProfileImages.Folder())
	}
	if ProfileCVs.Folder() != "profile_cvs" {
		t.Errorf("unexpected folder: %s", ProfileCVs.Folder())
	}
}
