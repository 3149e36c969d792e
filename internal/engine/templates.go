package engine

// Template is a curated basics+focus set that can replace the current
// task lists wholesale.
type Template struct {
	Name   string     `json:"name"`
	Basics []TaskItem `json:"basics"`
	Focus  []TaskItem `json:"focus"`
}

const (
	TemplateStandard = "Standard"
	TemplateADHD     = "ADHD Support"
	TemplateGrief    = "Grief Journey"
)

// Templates returns the static template catalog.
func Templates() []Template {
	return []Template{
		{Name: TemplateStandard, Basics: DefaultDailyBasics(), Focus: []TaskItem{}},
		{
			Name: TemplateADHD,
			Basics: []TaskItem{
				{ID: "basic_meds", Text: "Took medication", Category: CategoryBasic, XPValue: BasicTaskXP},
				{ID: "basic_water", Text: "Drank water", Category: CategoryBasic, XPValue: BasicTaskXP},
				{ID: "basic_protein", Text: "Ate protein", Category: CategoryBasic, XPValue: BasicTaskXP},
				{ID: "basic_door", Text: "Step outside front door", Category: CategoryBasic, XPValue: BasicTaskXP},
				{ID: "basic_teeth", Text: "Brushed teeth", Category: CategoryBasic, XPValue: BasicTaskXP},
			},
			Focus: []TaskItem{
				{ID: "focus_timer", Text: "Set a 10min timer for a task", Category: CategoryFocus, XPValue: BasicTaskXP},
				{ID: "focus_body_double", Text: "Body double (text a friend)", Category: CategoryFocus, XPValue: BasicTaskXP},
				{ID: "focus_dopamine", Text: "Do one dopamine menu item", Category: CategoryFocus, XPValue: BasicTaskXP},
			},
		},
		{
			Name: TemplateGrief,
			Basics: []TaskItem{
				{ID: "basic_shower", Text: "Shower or face wash", Category: CategoryBasic, XPValue: BasicTaskXP},
				{ID: "basic_food", Text: "Ate comforting food", Category: CategoryBasic, XPValue: BasicTaskXP},
				{ID: "basic_rest", Text: "Allowed myself to rest", Category: CategoryBasic, XPValue: BasicTaskXP},
				{ID: "basic_feel", Text: "Acknowledged a feeling", Category: CategoryBasic, XPValue: BasicTaskXP},
			},
			Focus: []TaskItem{
				{ID: "focus_memory", Text: "Look at a photo I love", Category: CategoryFocus, XPValue: BasicTaskXP},
				{ID: "focus_no", Text: "Say no to one draining thing", Category: CategoryFocus, XPValue: BasicTaskXP},
				{ID: "focus_kindness", Text: "One gentle thing for myself", Category: CategoryFocus, XPValue: BasicTaskXP},
			},
		},
	}
}

// TemplateByName resolves a template. Unknown names fall back to the
// Standard lists but keep the requested name, matching the permissive
// template picker behavior.
func TemplateByName(name string) Template {
	for _, t := range Templates() {
		if t.Name == name {
			return t
		}
	}
	return Template{Name: name, Basics: DefaultDailyBasics(), Focus: []TaskItem{}}
}

// ApplyTemplate replaces the basics and focus lists with the named
// template's and records it as active. Daily history is untouched, so XP
// already earned for now-removed ids stays banked.
func ApplyTemplate(s *AppState, name string) Template {
	tpl := TemplateByName(name)
	s.CustomBasics = append([]TaskItem(nil), tpl.Basics...)
	s.FocusTasks = append([]TaskItem(nil), tpl.Focus...)
	s.ActiveTemplate = tpl.Name
	return tpl
}
