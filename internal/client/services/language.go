package services

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/i18n"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

// LanguageService holds the UI language. The code is stored as plain text
// under storage.KeyLanguage.
type LanguageService struct {
	repo storage.Repository
	log  logging.Logger

	mu   sync.RWMutex
	lang i18n.Language
}

func NewLanguageService(repo storage.Repository, log logging.Logger) *LanguageService {
	return &LanguageService{repo: repo, log: log.With("store", "language"), lang: i18n.DefaultLanguage}
}

// Load restores the saved language. A missing key means the default; unknown
// values and read failures keep the active language.
func (s *LanguageService) Load(ctx context.Context) {
	data, err := s.repo.Get(ctx, storage.KeyLanguage)
	if err != nil {
		s.log.Error(ctx, "failed to load language", "error", err)
		return
	}
	if data == nil {
		s.mu.Lock()
		s.lang = i18n.DefaultLanguage
		s.mu.Unlock()
		return
	}

	lang, err := i18n.ParseLanguage(strings.Trim(string(data), `"`))
	if err != nil {
		s.log.Warn(ctx, "ignoring stored language", "error", err)
		return
	}

	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
}

// SetLanguage persists lang and then makes it active.
func (s *LanguageService) SetLanguage(ctx context.Context, lang i18n.Language) error {
	lang, err := i18n.ParseLanguage(string(lang))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, storage.KeyLanguage, []byte(lang)); err != nil {
		s.log.Error(ctx, "failed to save language", "error", err)
		return err
	}
	s.lang = lang
	return nil
}

func (s *LanguageService) Language() i18n.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// T is the translation table of the active language.
func (s *LanguageService) T() *i18n.Translations {
	return i18n.Table(s.Language())
}
