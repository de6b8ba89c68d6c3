package intake

import "github.com/bmeers/student-intake/model"

// fileUpload is one entry of an upload question's answer. The survey tool
// sends more metadata (name, mime type, size); only the hosted URL matters
// here.
type fileUpload struct {
	Name string
	URL  string
}

// uploadedFiles decodes an upload-shaped answer. A nil value means the
// question was left unanswered; a present answer must be a list of objects,
// but an entry without a url field is preserved as-is — whether that is
// acceptable is the caller's policy.
func uploadedFiles(q model.Question) ([]fileUpload, error) {
	if q.Value == nil {
		return nil, nil
	}
	entries, ok := q.Value.([]any)
	if !ok {
		return nil, argErrorf("question %s has a malformed upload answer", q.Key)
	}
	files := make([]fileUpload, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, argErrorf("question %s has a malformed upload entry", q.Key)
		}
		f := fileUpload{}
		f.Name, _ = obj["name"].(string)
		f.URL, _ = obj["url"].(string)
		files = append(files, f)
	}
	return files, nil
}

func attachmentFromLink(kind model.AttachmentKind, url string) *model.Attachment {
	return &model.Attachment{
		Kind:  kind,
		Data:  []string{url},
		Types: []string{model.AttachmentTypeLink},
	}
}

// attachmentFromFiles requires every upload entry to carry a hosted URL; an
// upload the tool accepted but never finished hosting is a malformed
// submission, not a silent drop.
func attachmentFromFiles(kind model.AttachmentKind, q model.Question, files []fileUpload) (*model.Attachment, error) {
	att := &model.Attachment{Kind: kind}
	for _, f := range files {
		if f.URL == "" {
			return nil, argErrorf("question %s upload %q has no url", q.Key, f.Name)
		}
		att.Data = append(att.Data, f.URL)
		att.Types = append(att.Types, model.AttachmentTypeFile)
	}
	return att, nil
}

// extractCV resolves the two shapes a CV can arrive in, preferring a link
// over an upload. One of the two must carry a usable answer.
func extractCV(ix index) (*model.Attachment, error) {
	if link, ok := ix.find(keyCVLink); ok {
		if url, ok := link.Value.(string); ok && url != "" {
			return attachmentFromLink(model.AttachmentCV, url), nil
		}
	}

	upload, ok := ix.find(keyCVUpload)
	if !ok {
		return nil, argErrorf("no cv answer found in the submission")
	}
	files, err := uploadedFiles(upload)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, argErrorf("no cv answer found in the submission")
	}
	return attachmentFromFiles(model.AttachmentCV, upload, files)
}

// extractPortfolio mirrors the CV resolution but the field is optional:
// as long as at least one portfolio question exists, leaving both shapes
// unanswered yields no attachment instead of an error.
func extractPortfolio(ix index) (*model.Attachment, error) {
	link, linkOK := ix.find(keyPortfolioLink)
	upload, uploadOK := ix.find(keyPortfolioUpload)
	if !linkOK && !uploadOK {
		return nil, argErrorf("no portfolio question found in the submission")
	}

	if linkOK {
		if url, ok := link.Value.(string); ok && url != "" {
			return attachmentFromLink(model.AttachmentPortfolio, url), nil
		}
	}
	if uploadOK {
		files, err := uploadedFiles(upload)
		if err != nil {
			return nil, err
		}
		if len(files) > 0 {
			return attachmentFromFiles(model.AttachmentPortfolio, upload, files)
		}
	}
	return nil, nil
}

// extractMotivation resolves three shapes in fixed precedence: a link, an
// upload, then a plain written motivation. The first shape carrying an
// answer wins; a submission answering none of them is rejected.
func extractMotivation(ix index) (*model.Attachment, error) {
	if link, ok := ix.find(keyMotivationLink); ok {
		if url, ok := link.Value.(string); ok && url != "" {
			return attachmentFromLink(model.AttachmentMotivation, url), nil
		}
	}

	if upload, ok := ix.find(keyMotivationFile); ok {
		files, err := uploadedFiles(upload)
		if err != nil {
			return nil, err
		}
		if len(files) > 0 {
			return attachmentFromFiles(model.AttachmentMotivation, upload, files)
		}
	}

	if text, ok := ix.find(keyMotivationText); ok {
		if written, ok := text.Value.(string); ok && written != "" {
			return &model.Attachment{
				Kind:  model.AttachmentMotivation,
				Data:  []string{written},
				Types: []string{model.AttachmentTypeString},
			}, nil
		}
	}

	return nil, argErrorf("no motivation answer found in the submission")
}
