package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

func pdfInput() *ports.UploadFileInput {
	return &ports.UploadFileInput{
		Filename:    "piece.pdf",
		ContentType: "application/pdf",
		FileType:    "pdf",
		Content:     strings.NewReader("%PDF-1.4"),
	}
}

func audioInput() *ports.UploadFileInput {
	return &ports.UploadFileInput{
		Filename:    "piece.mp3",
		ContentType: "audio/mpeg",
		FileType:    "audio",
		Content:     strings.NewReader("ID3"),
	}
}

func TestLibraryService_Upload_PDFOnly(t *testing.T) {
	var calls []string
	api := &stubMusicAPI{
		uploadFn: func(_ context.Context, _ string, input ports.UploadFileInput) (*ports.UploadedFile, error) {
			calls = append(calls, "upload:"+input.FileType)
			return &ports.UploadedFile{URL: "https://files/" + input.Filename}, nil
		},
		createSheetFn: func(_ context.Context, _ string, input ports.CreateSheetMusicInput) (*domain.SheetMusic, error) {
			calls = append(calls, "create")
			if input.PDFURL != "https://files/piece.pdf" {
				t.Fatalf("pdf url not wired into metadata: %q", input.PDFURL)
			}
			if input.AudioURL != "" {
				t.Fatalf("unexpected audio url: %q", input.AudioURL)
			}
			return &domain.SheetMusic{ID: "sm1", Title: input.Title}, nil
		},
	}
	svc := NewLibraryService(api, zerolog.Nop())

	_, err := svc.Upload(context.Background(), "t1", ports.UploadSubmission{
		Title:           "Prelude",
		Composer:        "Bach",
		Genre:           "classical",
		DifficultyLevel: domain.TierIntermediate,
		PDF:             pdfInput(),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	want := []string{"upload:pdf", "create"}
	if len(calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], calls[i])
		}
	}
}

func TestLibraryService_Upload_PDFThenAudio(t *testing.T) {
	var calls []string
	api := &stubMusicAPI{
		uploadFn: func(_ context.Context, _ string, input ports.UploadFileInput) (*ports.UploadedFile, error) {
			calls = append(calls, "upload:"+input.FileType)
			return &ports.UploadedFile{URL: "https://files/" + input.Filename}, nil
		},
		createSheetFn: func(_ context.Context, _ string, input ports.CreateSheetMusicInput) (*domain.SheetMusic, error) {
			calls = append(calls, "create")
			if input.PDFURL == "" || input.AudioURL == "" {
				t.Fatalf("both urls must be wired: %q %q", input.PDFURL, input.AudioURL)
			}
			return &domain.SheetMusic{ID: "sm1"}, nil
		},
	}
	svc := NewLibraryService(api, zerolog.Nop())

	_, err := svc.Upload(context.Background(), "t1", ports.UploadSubmission{
		Title:           "Prelude",
		Composer:        "Bach",
		Genre:           "classical",
		DifficultyLevel: domain.TierAdvanced,
		PDF:             pdfInput(),
		Audio:           audioInput(),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	want := []string{"upload:pdf", "upload:audio", "create"}
	for i := range want {
		if i >= len(calls) || calls[i] != want[i] {
			t.Fatalf("expected call order %v, got %v", want, calls)
		}
	}
}

func TestLibraryService_Upload_FileFailureAbortsBeforeMetadata(t *testing.T) {
	created := false
	api := &stubMusicAPI{
		uploadFn: func(context.Context, string, ports.UploadFileInput) (*ports.UploadedFile, error) {
			return nil, domain.ErrBackendUnavailable
		},
		createSheetFn: func(context.Context, string, ports.CreateSheetMusicInput) (*domain.SheetMusic, error) {
			created = true
			return nil, nil
		},
	}
	svc := NewLibraryService(api, zerolog.Nop())

	_, err := svc.Upload(context.Background(), "t1", ports.UploadSubmission{
		Title: "Prelude",
		PDF:   pdfInput(),
	})
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected upload failure, got %v", err)
	}
	if created {
		t.Fatalf("metadata record must not be created after a failed file upload")
	}
}

func TestLibraryService_Upload_NoFiles(t *testing.T) {
	api := &stubMusicAPI{
		createSheetFn: func(_ context.Context, _ string, input ports.CreateSheetMusicInput) (*domain.SheetMusic, error) {
			if input.PDFURL != "" || input.AudioURL != "" {
				t.Fatalf("unexpected file urls: %q %q", input.PDFURL, input.AudioURL)
			}
			if len(input.Tags) != 2 {
				t.Fatalf("tags not passed through: %v", input.Tags)
			}
			return &domain.SheetMusic{ID: "sm1"}, nil
		},
	}
	svc := NewLibraryService(api, zerolog.Nop())

	_, err := svc.Upload(context.Background(), "t1", ports.UploadSubmission{
		Title: "Etude",
		Tags:  []string{"romantic", "piano"},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
}
