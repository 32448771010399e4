package usecase

import (
	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const (
	defaultVersion = "4.0"
	defaultSource  = "Biocheck.Gent BV"
)

// AssembleDocument builds the complete questions file for one language.
func AssembleDocument(src *domain.SourceDocument, lang domain.Language) (*domain.OutputDocument, error) {
	languageName, err := lang.Name()
	if err != nil {
		return nil, err
	}
	profile, err := ConvertFarmProfile(src, lang)
	if err != nil {
		return nil, err
	}
	assessment, err := ConvertAssessment(src, lang)
	if err != nil {
		return nil, err
	}

	doc := &domain.OutputDocument{
		Language:     lang,
		LanguageName: languageName,
		Version:      src.Version,
		Source:       src.Source,
		Glossary:     convertGlossary(src, lang),
		FarmProfile:  profile,
		Assessment:   assessment,
	}
	if doc.Version == "" {
		doc.Version = defaultVersion
	}
	if doc.Source == "" {
		doc.Source = defaultSource
	}
	return doc, nil
}

func convertGlossary(src *domain.SourceDocument, lang domain.Language) domain.Glossary {
	glossary := domain.Glossary{}
	if src.Glossary == nil {
		return glossary
	}
	for pair := src.Glossary.Oldest(); pair != nil; pair = pair.Next() {
		glossary = append(glossary, domain.GlossaryEntry{
			Term:       pair.Key,
			Definition: pair.Value.Resolve(lang),
		})
	}
	return glossary
}
