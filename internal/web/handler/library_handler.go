package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/web/cookie"
)

// LibraryHandler serves the sheet-music browse, detail, and upload screens.
type LibraryHandler struct {
	library ports.LibraryService
}

func NewLibraryHandler(library ports.LibraryService) *LibraryHandler {
	return &LibraryHandler{library: library}
}

type uploadForm struct {
	Title           string `form:"title"            validate:"required"`
	Composer        string `form:"composer"         validate:"required"`
	Genre           string `form:"genre"            validate:"required"`
	DifficultyLevel string `form:"difficulty_level" validate:"required,oneof=beginner intermediate advanced"`
	Description     string `form:"description"`
	Tags            string `form:"tags"`
}

// List renders the library with the current filters applied.
func (h *LibraryHandler) List(c echo.Context) error {
	filter := ports.SheetMusicFilter{
		Search:     c.QueryParam("search"),
		Genre:      c.QueryParam("genre"),
		Difficulty: c.QueryParam("difficulty"),
	}

	data := echo.Map{
		"Filter": filter,
		"Genres": domain.Genres,
		"Tiers":  domain.Tiers,
	}

	records, err := h.library.Browse(c.Request().Context(), currentToken(c), filter)
	if err != nil {
		data["Records"] = []domain.SheetMusic{}
		return flashError(c, "library", err, data)
	}

	data["Records"] = records
	return c.Render(http.StatusOK, "library", pageData(c, data))
}

func (h *LibraryHandler) Detail(c echo.Context) error {
	record, err := h.library.Get(c.Request().Context(), currentToken(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "sheet music not found")
		}
		return err
	}

	return c.Render(http.StatusOK, "library_detail", pageData(c, echo.Map{
		"Record": record,
	}))
}

// ShowUpload renders the upload form. Reaching it requires the teacher or
// admin role, enforced by the router.
func (h *LibraryHandler) ShowUpload(c echo.Context) error {
	return c.Render(http.StatusOK, "upload", pageData(c, echo.Map{
		"Form":   uploadForm{DifficultyLevel: domain.TierBeginner},
		"Genres": domain.Genres,
		"Tiers":  domain.Tiers,
	}))
}

// Upload submits the form: optional PDF and audio files first, then the
// metadata record. A failed file upload aborts the submission.
func (h *LibraryHandler) Upload(c echo.Context) error {
	var form uploadForm
	if err := c.Bind(&form); err != nil {
		return h.rerenderUpload(c, form, err)
	}
	if err := c.Validate(&form); err != nil {
		return h.rerenderUpload(c, form, err)
	}

	submission := ports.UploadSubmission{
		Title:           form.Title,
		Composer:        form.Composer,
		Genre:           form.Genre,
		DifficultyLevel: form.DifficultyLevel,
		Description:     form.Description,
		Tags:            splitTags(form.Tags),
	}

	pdf, closePDF, err := formFile(c, "pdf_file", "pdf")
	if err != nil {
		return h.rerenderUpload(c, form, err)
	}
	if closePDF != nil {
		defer closePDF()
	}
	submission.PDF = pdf

	audio, closeAudio, err := formFile(c, "audio_file", "audio")
	if err != nil {
		return h.rerenderUpload(c, form, err)
	}
	if closeAudio != nil {
		defer closeAudio()
	}
	submission.Audio = audio

	if _, err := h.library.Upload(c.Request().Context(), currentToken(c), submission); err != nil {
		return h.rerenderUpload(c, form, err)
	}

	cookie.SetFlash(c, "success", "Sheet music uploaded.")
	return c.Redirect(http.StatusSeeOther, "/library")
}

func (h *LibraryHandler) rerenderUpload(c echo.Context, form uploadForm, err error) error {
	return flashError(c, "upload", err, echo.Map{
		"Form":   form,
		"Genres": domain.Genres,
		"Tiers":  domain.Tiers,
	})
}

// formFile opens an optional multipart file field. An absent field yields a
// nil input, not an error.
func formFile(c echo.Context, field, fileType string) (*ports.UploadFileInput, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if header.Filename == "" || header.Size == 0 {
		return nil, nil, nil
	}

	src, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &ports.UploadFileInput{
		Filename:    header.Filename,
		ContentType: contentType(header),
		FileType:    fileType,
		Content:     src,
	}, func() { _ = src.Close() }, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
