package models

import (
	"time"

	"gorm.io/gorm"
)

var EmployeeTypes = []string{"Permanent", "Casual", "Contract"}

var LeaveApprovalStatuses = []string{"Pending", "Approved", "Rejected"}

// Employee is keyed by the HR register's employee id, e.g. EMP-001.
type Employee struct {
	EmpID         string  `json:"empId" gorm:"primaryKey;size:32;column:emp_id"`
	Name          string  `json:"name"`
	Designation   string  `json:"designation"`
	Address       string  `json:"address"`
	JoinDate      string  `json:"joinDate"`
	WagePerDay    float64 `json:"wagePerDay"`
	EmpType       string  `json:"empType"`
	IncrementDate string  `json:"incrementDate"`
	ProfilePic    string  `json:"profilePic"`
}

type LeaveRecord struct {
	ID        string  `json:"id" gorm:"primaryKey;size:32"`
	EmpID     string  `json:"empId" gorm:"column:emp_id"`
	LeaveType string  `json:"leaveType"`
	FromDate  string  `json:"fromDate"`
	ToDate    string  `json:"toDate"`
	Days      float64 `json:"days"`
	Approved  string  `json:"approved"`
}

type OvertimeRecord struct {
	ID      string  `json:"id" gorm:"primaryKey;size:32"`
	Date    string  `json:"date"`
	EmpID   string  `json:"empId" gorm:"column:emp_id"`
	OtHours float64 `json:"otHours"`
	Rate    float64 `json:"rate"`
	Amount  float64 `json:"amount"`
}

// LeaveDays counts both endpoints, so a single-day leave is 1 day. A range
// with toDate before fromDate (or an unparseable date) is 0, never negative.
func LeaveDays(fromDate, toDate string) float64 {
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return 0
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return 0
	}
	days := to.Sub(from).Hours()/24 + 1
	if days < 0 {
		return 0
	}
	return days
}

// OvertimeAmount is the denormalized payout for an overtime entry.
func OvertimeAmount(otHours, rate float64) float64 {
	return otHours * rate
}

func (r *LeaveRecord) BeforeSave(tx *gorm.DB) error {
	r.Days = LeaveDays(r.FromDate, r.ToDate)
	return nil
}

func (r *OvertimeRecord) BeforeSave(tx *gorm.DB) error {
	r.Amount = OvertimeAmount(r.OtHours, r.Rate)
	return nil
}
