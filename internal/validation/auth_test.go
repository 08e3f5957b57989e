package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterInput_Validate(t *testing.T) {
	t.Parallel()

	valid := RegisterInput{
		Email:    "Nguyen.Hue@Example.com",
		Password: "quangtrung1789",
		Name:     "Nguyễn Huệ",
		Handle:   "@Quang-Trung!",
	}

	tests := []struct {
		name    string
		mutate  func(in *RegisterInput)
		wantErr string
	}{
		{name: "valid", mutate: func(in *RegisterInput) {}},
		{
			name:    "missing field",
			mutate:  func(in *RegisterInput) { in.Name = "" },
			wantErr: "Please fill all fields",
		},
		{
			name:    "short password",
			mutate:  func(in *RegisterInput) { in.Password = "12345" },
			wantErr: "at least 6 characters",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	t.Parallel()

	in := RegisterInput{Email: " Nguyen.Hue@Example.COM ", Handle: "@Quang-Trung_89!"}
	assert.Equal(t, "nguyen.hue@example.com", in.NormalizedEmail())
	assert.Equal(t, "quangtrung_89", in.NormalizedHandle())

	assert.Equal(t, "lli", NormalizeHandle("@LêLợi"), "non-ascii letters are stripped")
	assert.Equal(t, "", NormalizeHandle("@--!"))
}

func TestLoginInput_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&LoginInput{Email: "a@b.c", Password: "x"}).Validate())
	assert.ErrorContains(t, (&LoginInput{Email: "a@b.c"}).Validate(), "email")
}
