package entities

// UserPatch is a partial user record for shallow merges against the cached
// record. Nil fields are left unchanged; password is deliberately absent.
type UserPatch struct {
	Name            *string
	Country         *string
	Avatar          *string
	Level           *string
	ProgressEnglish *int
	ProgressFrench  *int
	ProgressRussian *int
}

// Patch converts a progress update into a user patch.
func (p ProgressUpdate) Patch() UserPatch {
	return UserPatch{
		ProgressEnglish: p.English,
		ProgressFrench:  p.French,
		ProgressRussian: p.Russian,
	}
}

// ApplyTo overlays the non-nil fields of the patch onto the user.
// Progress values are clamped to [0, 100].
func (p UserPatch) ApplyTo(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Level != nil {
		u.Level = *p.Level
	}
	if p.ProgressEnglish != nil {
		u.SetProgress(LanguageEnglish, *p.ProgressEnglish)
	}
	if p.ProgressFrench != nil {
		u.SetProgress(LanguageFrench, *p.ProgressFrench)
	}
	if p.ProgressRussian != nil {
		u.SetProgress(LanguageRussian, *p.ProgressRussian)
	}
}
