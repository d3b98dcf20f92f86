package domain

// DiplomaProject tracks the thesis: how much of it is written and how good it is.
type DiplomaProject struct {
	pctCompletion int
	quality       int
	theme         Theme
}

// NewDiplomaProject validates and creates a DiplomaProject.
func NewDiplomaProject(pctCompletion, quality int, theme Theme) (*DiplomaProject, error) {
	if err := validateRange("diploma_project.pct_completion", pctCompletion, MinPct, MaxPct); err != nil {
		return nil, err
	}
	if err := validateRange("diploma_project.quality", quality, MinQuality, MaxQuality); err != nil {
		return nil, err
	}
	if theme == (Theme{}) {
		return nil, validateName("theme.name", "")
	}
	return &DiplomaProject{
		pctCompletion: pctCompletion,
		quality:       quality,
		theme:         theme,
	}, nil
}

func (d *DiplomaProject) PctCompletion() int { return d.pctCompletion }
func (d *DiplomaProject) Quality() int       { return d.quality }
func (d *DiplomaProject) Theme() Theme       { return d.theme }

// ChangeCompletion applies delta and returns the clamped completion percentage.
func (d *DiplomaProject) ChangeCompletion(delta int) int {
	d.pctCompletion = clamp(d.pctCompletion, delta, MinPct, MaxPct)
	return d.pctCompletion
}

// ChangeQuality applies delta and returns the clamped quality.
func (d *DiplomaProject) ChangeQuality(delta int) int {
	d.quality = clamp(d.quality, delta, MinQuality, MaxQuality)
	return d.quality
}

// Presentation is the defense slide deck.
type Presentation struct {
	pctCompletion int
}

// NewPresentation validates and creates a Presentation.
func NewPresentation(pctCompletion int) (*Presentation, error) {
	if err := validateRange("presentation.pct_completion", pctCompletion, MinPct, MaxPct); err != nil {
		return nil, err
	}
	return &Presentation{pctCompletion: pctCompletion}, nil
}

func (p *Presentation) PctCompletion() int { return p.pctCompletion }

// ChangeCompletion applies delta and returns the clamped completion percentage.
func (p *Presentation) ChangeCompletion(delta int) int {
	p.pctCompletion = clamp(p.pctCompletion, delta, MinPct, MaxPct)
	return p.pctCompletion
}
