package domain

// Entrust 寵物託付申請
type Entrust struct {
	EID         int64  `gorm:"column:eid;primaryKey;autoIncrement" json:"EID"`
	UID         int64  `gorm:"column:uid;index" json:"UID"`
	Text        string `gorm:"column:text;type:text" json:"text"`
	StartDate   string `gorm:"column:start_date;size:10" json:"startDate"`
	EndDate     string `gorm:"column:end_date;size:10;index" json:"endDate"`
	ToyPayment  int64  `gorm:"column:toypayment" json:"toypayment"`
	CityID      int64  `gorm:"column:city_id;index" json:"cityId"`
	CreatedDate string `gorm:"column:created_date;size:19" json:"createdDate"`
}

// TableName gorm table name
func (Entrust) TableName() string {
	return "entrusts"
}

// EntrustInput client supplied fields of create / update
type EntrustInput struct {
	Text       string
	StartDate  string
	EndDate    string
	ToyPayment int64
	CityID     int64
}

// Apply copy the input onto e
func (e *Entrust) Apply(in EntrustInput) {
	e.Text = in.Text
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.ToyPayment = in.ToyPayment
	e.CityID = in.CityID
}

// IsOwner uid created e
func (e *Entrust) IsOwner(uid int64) bool {
	return e.UID == uid
}

// Pet 可被託付的寵物
type Pet struct {
	PID         int64  `gorm:"column:pid;primaryKey;autoIncrement" json:"PID"`
	UID         int64  `gorm:"column:uid;index" json:"UID"`
	Name        string `gorm:"column:name;size:64" json:"name"`
	Species     string `gorm:"column:species;size:32" json:"species"`
	Entrustable bool   `gorm:"column:entrustable;index" json:"entrustable"`
}

// TableName gorm table name
func (Pet) TableName() string {
	return "pets"
}

// Info entrust board summary
type Info struct {
	TotalEntrusts   int64 `json:"totalEntrusts"`
	OpenEntrusts    int64 `json:"openEntrusts"`
	EntrustablePets int64 `json:"entrustablePets"`
}
