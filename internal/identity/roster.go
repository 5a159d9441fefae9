package identity

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// entry pairs a public user record with its private password. The
// password never leaves this package except through FindUser matching.
type entry struct {
	user     domain.User
	password string
}

// Roster is the static table of known accounts. Loaded once at process
// start and never mutated.
type Roster struct {
	entries []entry
}

// FindUser matches credentials against the roster. A miss is a normal
// negative result, not an error.
func (r *Roster) FindUser(username, password string) (*domain.User, bool) {
	for i := range r.entries {
		if r.entries[i].user.Username == username && r.entries[i].password == password {
			user := r.entries[i].user
			return &user, true
		}
	}
	return nil, false
}

// GetByID looks up a user by id.
func (r *Roster) GetByID(id int) (*domain.User, bool) {
	for i := range r.entries {
		if r.entries[i].user.ID == id {
			user := r.entries[i].user
			return &user, true
		}
	}
	return nil, false
}

// Departments returns every department-role entry in roster order.
func (r *Roster) Departments() []domain.Department {
	departments := make([]domain.Department, 0, len(r.entries))
	for i := range r.entries {
		if r.entries[i].user.Role != domain.RoleDepartment {
			continue
		}
		departments = append(departments, domain.Department{
			ID:   r.entries[i].user.ID,
			Name: r.entries[i].user.DepartmentName,
		})
	}
	return departments
}

// Demo credentials: one admin plus one account per department, all
// sharing the same plain-text demo password.
const demoPassword = "123456"

var demoAccounts = []struct {
	id         int
	username   string
	role       domain.Role
	department string
}{
	{1, "admin", domain.RoleAdmin, "Administración"},
	{2, "atencion", domain.RoleDepartment, "Atención al ciudadano"},
	{3, "segurosocial", domain.RoleDepartment, "Seguro social"},
	{4, "supervision", domain.RoleDepartment, "Supervisión Educativa"},
	{5, "consultoria", domain.RoleDepartment, "Consultoría Jurídica"},
	{6, "bienes", domain.RoleDepartment, "Bienes Nacionales"},
	{7, "planificacion", domain.RoleDepartment, "Planificación y Presupuesto"},
	{8, "cnae", domain.RoleDepartment, "CNAE"},
	{9, "crca", domain.RoleDepartment, "CRCA"},
	{10, "comunidades", domain.RoleDepartment, "Comunidades Educativas"},
	{11, "indigena", domain.RoleDepartment, "Indígena"},
	{12, "formacion", domain.RoleDepartment, "Formación e Investigación Docente"},
	{13, "despacho", domain.RoleDepartment, "Despacho"},
	{14, "gobernacion", domain.RoleDepartment, "Gobernación"},
	{15, "salasituacional", domain.RoleDepartment, "Sala Situacional"},
	{16, "sige", domain.RoleDepartment, "Sige"},
	{17, "gestionhumana", domain.RoleDepartment, "Gestión Humana"},
	{18, "mediagral", domain.RoleDepartment, "Div. Media general y media técnica"},
	{19, "primaria", domain.RoleDepartment, "Div. Primaria y Educación especial"},
	{20, "informatica", domain.RoleDepartment, "Informática"},
	{21, "prensa", domain.RoleDepartment, "Prensa"},
	{22, "fundabit", domain.RoleDepartment, "Fundabit"},
	{23, "unem", domain.RoleDepartment, "Unem"},
	{24, "auditoria", domain.RoleDepartment, "Auditoría"},
	{25, "barberia", domain.RoleDepartment, "Barbería & Peluquería"},
	{26, "externos", domain.RoleDepartment, "Entes Externos"},
}

// NewDemoRoster builds the fixed demo roster.
func NewDemoRoster() *Roster {
	now := time.Now().UTC()
	entries := make([]entry, 0, len(demoAccounts))
	for _, account := range demoAccounts {
		entries = append(entries, entry{
			user: domain.User{
				ID:             account.id,
				Username:       account.username,
				Role:           account.role,
				DepartmentName: account.department,
				CreatedAt:      now,
			},
			password: demoPassword,
		})
	}
	return &Roster{entries: entries}
}
