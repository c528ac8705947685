package experience

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/autoresume/internal/parsing"
	"github.com/jonathan/autoresume/internal/rewriting"
	"github.com/jonathan/autoresume/internal/types"
)

// Section names used in logs and errors
const (
	SectionExperience       = "experience"
	SectionProjects         = "projects"
	SectionExtracurriculars = "extracurriculars"
)

// BuildOptions configures BuildResume
type BuildOptions struct {
	// Engine rewrites entry text. Nil uses rewriting.Default().
	Engine *rewriting.Engine
	// MaxXyzBullets caps project and extracurricular bullets. <= 0 uses rewriting.DefaultXyzBullets.
	MaxXyzBullets int
	// TabooPhrases are reported as warnings when a produced bullet contains one
	TabooPhrases []string
	Logger       *zap.Logger
}

type template int

const (
	templateStar template = iota
	templateXyz
)

// BuildResume rewrites every experience, project and extracurricular entry into
// bullets and normalizes dates and skills. Sections are built concurrently; the
// output keeps input order within each section.
func BuildResume(ctx context.Context, raw *types.RawResume, opts BuildOptions) (*types.Resume, error) {
	if raw == nil {
		return nil, &BuildError{Section: "resume", Message: "raw resume is nil"}
	}
	engine := opts.Engine
	if engine == nil {
		engine = rewriting.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	resume := &types.Resume{
		Contact:   trimContact(raw.Contact),
		Education: buildEducation(raw.Education),
		Skills:    parsing.NormalizeSkills(engine.Lexicon(), raw.Skills),
	}

	sections := []struct {
		name     string
		entries  []types.RawEntry
		template template
		text     func(types.RawEntry) string
		dest     *[]types.Entry
	}{
		{SectionExperience, raw.Experience, templateStar, types.RawEntry.SourceText, &resume.Experience},
		{SectionProjects, raw.Projects, templateXyz, types.RawEntry.SourceText, &resume.Projects},
		{SectionExtracurriculars, raw.Extracurriculars, templateXyz, types.RawEntry.ExtracurricularText, &resume.Extracurriculars},
	}

	g, gCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex // Protect result assignments

	for _, section := range sections {
		g.Go(func() error {
			built := make([]types.Entry, 0, len(section.entries))
			for i, entry := range section.entries {
				if err := gCtx.Err(); err != nil {
					return &BuildError{Section: section.name, Message: "build cancelled", Cause: err}
				}
				e := buildEntry(engine, entry, section.text(entry), section.template, opts.MaxXyzBullets)
				logger.Debug("built entry",
					zap.String("section", section.name),
					zap.Int("index", i),
					zap.String("title", e.Title),
					zap.Int("bullets", len(e.Bullets)))
				built = append(built, e)
			}
			mu.Lock()
			*section.dest = built
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for bullet, phrases := range rewriting.CheckForbiddenPhrasesInBullets(resume.AllBullets(), opts.TabooPhrases) {
		logger.Warn("bullet contains taboo phrase",
			zap.String("bullet", bullet),
			zap.Strings("phrases", phrases))
	}

	logger.Info("resume built",
		zap.Int("experience", len(resume.Experience)),
		zap.Int("projects", len(resume.Projects)),
		zap.Int("extracurriculars", len(resume.Extracurriculars)))

	return resume, nil
}

func buildEntry(engine *rewriting.Engine, raw types.RawEntry, text string, tmpl template, maxXyz int) types.Entry {
	tools := parsing.NormalizeTools(engine.Lexicon(), raw.Tools)

	var bullets []string
	switch tmpl {
	case templateStar:
		bullets = engine.MakeStarBullets(text, strings.TrimSpace(raw.Title), raw.Org(), tools)
	case templateXyz:
		bullets = engine.MakeXyzBullets(text, tools, maxXyz)
	}
	if bullets == nil {
		bullets = []string{}
	}

	return types.Entry{
		Title:    strings.TrimSpace(raw.Title),
		Company:  raw.Org(),
		Location: strings.TrimSpace(raw.Location),
		Tools:    tools,
		Dates:    parsing.NormalizeDateRange(raw.DateText()),
		Bullets:  bullets,
	}
}

func buildEducation(education []types.Education) []types.Education {
	out := make([]types.Education, 0, len(education))
	for _, ed := range education {
		dates := ed.Dates
		if strings.TrimSpace(dates) == "" {
			dates = ed.Date
		}
		out = append(out, types.Education{
			School:   strings.TrimSpace(ed.School),
			Degree:   strings.TrimSpace(ed.Degree),
			Location: strings.TrimSpace(ed.Location),
			Dates:    parsing.NormalizeDateRange(dates),
			GPA:      strings.TrimSpace(ed.GPA),
		})
	}
	return out
}

func trimContact(c types.Contact) types.Contact {
	return types.Contact{
		FullName:  strings.TrimSpace(c.FullName),
		Email:     strings.TrimSpace(c.Email),
		Phone:     strings.TrimSpace(c.Phone),
		Location:  strings.TrimSpace(c.Location),
		LinkedIn:  strings.TrimSpace(c.LinkedIn),
		GitHub:    strings.TrimSpace(c.GitHub),
		Portfolio: strings.TrimSpace(c.Portfolio),
	}
}
