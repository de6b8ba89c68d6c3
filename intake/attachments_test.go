package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmeers/student-intake/model"
)

func upload(name, url string) map[string]any {
	entry := map[string]any{"name": name}
	if url != "" {
		entry["url"] = url
	}
	return entry
}

func TestExtractCV(t *testing.T) {
	t.Run("link answer", func(t *testing.T) {
		cv, err := extractCV(newIndex(validSubmission()))
		require.NoError(t, err)
		assert.Equal(t, &model.Attachment{
			Kind:  model.AttachmentCV,
			Data:  []string{"https://example.com/alex-cv.pdf"},
			Types: []string{model.AttachmentTypeLink},
		}, cv)
	})

	t.Run("link wins over an upload", func(t *testing.T) {
		sub := withValue(validSubmission(), keyCVUpload, []any{upload("cv.pdf", "https://files.example.com/cv.pdf")})
		cv, err := extractCV(newIndex(sub))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/alex-cv.pdf"}, cv.Data)
	})

	t.Run("upload answer", func(t *testing.T) {
		sub := withValue(validSubmission(), keyCVLink, nil)
		sub = withValue(sub, keyCVUpload, []any{
			upload("cv-1.pdf", "https://files.example.com/cv-1.pdf"),
			upload("cv-2.pdf", "https://files.example.com/cv-2.pdf"),
		})
		cv, err := extractCV(newIndex(sub))
		require.NoError(t, err)
		assert.Equal(t, &model.Attachment{
			Kind:  model.AttachmentCV,
			Data:  []string{"https://files.example.com/cv-1.pdf", "https://files.example.com/cv-2.pdf"},
			Types: []string{model.AttachmentTypeFile, model.AttachmentTypeFile},
		}, cv)
	})

	t.Run("upload without a url fails", func(t *testing.T) {
		sub := without(validSubmission(), keyCVLink)
		sub = withValue(sub, keyCVUpload, []any{upload("cv.pdf", "")})
		_, err := extractCV(newIndex(sub))
		requireArgError(t, err)
	})

	t.Run("no answer in either shape fails", func(t *testing.T) {
		sub := withValue(validSubmission(), keyCVLink, nil)
		_, err := extractCV(newIndex(sub))
		requireArgError(t, err)
	})

	t.Run("both questions missing fails", func(t *testing.T) {
		_, err := extractCV(newIndex(without(validSubmission(), keyCVLink, keyCVUpload)))
		requireArgError(t, err)
	})
}

func TestExtractPortfolio(t *testing.T) {
	t.Run("unanswered yields no attachment", func(t *testing.T) {
		portfolio, err := extractPortfolio(newIndex(validSubmission()))
		require.NoError(t, err)
		assert.Nil(t, portfolio)
	})

	t.Run("link answer", func(t *testing.T) {
		sub := withValue(validSubmission(), keyPortfolioLink, "https://alex.example.com")
		portfolio, err := extractPortfolio(newIndex(sub))
		require.NoError(t, err)
		assert.Equal(t, &model.Attachment{
			Kind:  model.AttachmentPortfolio,
			Data:  []string{"https://alex.example.com"},
			Types: []string{model.AttachmentTypeLink},
		}, portfolio)
	})

	t.Run("upload answer", func(t *testing.T) {
		sub := withValue(validSubmission(), keyPortfolioUpload, []any{
			upload("work.zip", "https://files.example.com/work.zip"),
		})
		portfolio, err := extractPortfolio(newIndex(sub))
		require.NoError(t, err)
		require.NotNil(t, portfolio)
		assert.Equal(t, []string{"https://files.example.com/work.zip"}, portfolio.Data)
	})

	t.Run("both questions missing fails", func(t *testing.T) {
		_, err := extractPortfolio(newIndex(without(validSubmission(), keyPortfolioLink, keyPortfolioUpload)))
		requireArgError(t, err)
	})
}

func TestExtractMotivation(t *testing.T) {
	t.Run("written answer", func(t *testing.T) {
		motivation, err := extractMotivation(newIndex(validSubmission()))
		require.NoError(t, err)
		assert.Equal(t, &model.Attachment{
			Kind:  model.AttachmentMotivation,
			Data:  []string{"I want to learn by building real things."},
			Types: []string{model.AttachmentTypeString},
		}, motivation)
	})

	t.Run("link wins over the written answer", func(t *testing.T) {
		sub := withValue(validSubmission(), keyMotivationLink, "https://example.com/motivation.pdf")
		motivation, err := extractMotivation(newIndex(sub))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/motivation.pdf"}, motivation.Data)
		assert.Equal(t, []string{model.AttachmentTypeLink}, motivation.Types)
	})

	t.Run("upload wins over the written answer", func(t *testing.T) {
		sub := withValue(validSubmission(), keyMotivationFile, []any{
			upload("motivation.pdf", "https://files.example.com/motivation.pdf"),
		})
		motivation, err := extractMotivation(newIndex(sub))
		require.NoError(t, err)
		assert.Equal(t, []string{model.AttachmentTypeFile}, motivation.Types)
	})

	t.Run("upload without a url fails", func(t *testing.T) {
		sub := withValue(validSubmission(), keyMotivationFile, []any{upload("motivation.pdf", "")})
		_, err := extractMotivation(newIndex(sub))
		requireArgError(t, err)
	})

	t.Run("no answer in any shape fails", func(t *testing.T) {
		sub := withValue(validSubmission(), keyMotivationText, nil)
		_, err := extractMotivation(newIndex(sub))
		requireArgError(t, err)
	})
}
