// Package forms holds the per-entity input validators. Each form binds from
// the request and Validate returns a field -> message map; an empty map means
// the input is acceptable. Handlers re-render the submitting template with
// the map attached instead of persisting anything.
package forms

type UploadForm struct {
	Labels string `form:"labels"`
}

func (f *UploadForm) Validate() map[string]string {
	errors := map[string]string{}
	if len(f.Labels) > 255 {
		errors["labels"] = "Ensure this value has at most 255 characters."
	}
	return errors
}
