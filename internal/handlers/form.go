package handlers

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"showbook/internal/models"
)

const maxFormMemory = 1 << 20

// parseForm reads a urlencoded or multipart body into r.PostForm.
func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostForm.Get(name))
}

// formOptional returns nil when the field was not submitted at all.
func formOptional(r *http.Request, name string) *string {
	if _, ok := r.PostForm[name]; !ok {
		return nil
	}
	v := formValue(r, name)
	return &v
}

// formList collects a multi-valued field, dropping blank entries.
func formList(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.PostForm[name] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// formOptionalList is formList for edits: nil when the field was not
// submitted, non-nil (possibly empty) otherwise.
func formOptionalList(r *http.Request, name string) []string {
	if _, ok := r.PostForm[name]; !ok {
		return nil
	}
	out := formList(r, name)
	if out == nil {
		out = []string{}
	}
	return out
}

func formCheckbox(r *http.Request, name string) bool {
	return models.ParseCheckbox(r.PostForm.Get(name))
}

func formOptionalCheckbox(r *http.Request, name string) *bool {
	if _, ok := r.PostForm[name]; !ok {
		return nil
	}
	v := formCheckbox(r, name)
	return &v
}

// formInt returns 0 for a missing or non-numeric value; validation rejects it.
func formInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(formValue(r, name))
	if err != nil {
		return 0
	}
	return n
}
