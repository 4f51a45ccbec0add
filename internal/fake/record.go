package fake

// PersonRecord is a fake person with web identity.
type PersonRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar"`
	IP      string `json:"ip"`
	Color   string `json:"favorite_color"`
	Home    string `json:"home"`
	Company string `json:"company"`
	Job     string `json:"job_title"`
	City    string `json:"city"`
}

// Person builds a complete PersonRecord. Fields are drawn in declaration
// order, gofakeit fields last.
func (f *Faker) Person() (PersonRecord, error) {
	var r PersonRecord
	var err error

	if r.ID, err = f.GUID(GUIDOptions{Version: 4}); err != nil {
		return PersonRecord{}, err
	}
	if r.Gender, err = f.Gender(); err != nil {
		return PersonRecord{}, err
	}
	if r.Name, err = f.Name(NameOptions{PersonOptions: PersonOptions{Gender: r.Gender}}); err != nil {
		return PersonRecord{}, err
	}
	if r.Email, err = f.Email(EmailOptions{}); err != nil {
		return PersonRecord{}, err
	}
	if r.Avatar, err = f.Avatar(AvatarOptions{Email: r.Email, Protocol: "https"}); err != nil {
		return PersonRecord{}, err
	}
	if r.IP, err = f.IP(); err != nil {
		return PersonRecord{}, err
	}
	if r.Color, err = f.Color(ColorOptions{Format: ColorHex}); err != nil {
		return PersonRecord{}, err
	}
	if r.Home, err = f.PlaceName(); err != nil {
		return PersonRecord{}, err
	}

	gf := f.Gofakeit()
	r.Company = gf.Company()
	r.Job = gf.JobTitle()
	r.City = gf.City()
	return r, nil
}
