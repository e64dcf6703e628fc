package domain

// User roles as assigned by the backend.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleStaff    = "staff"
)

type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	BranchID   int64  `json:"branchId,omitempty"`
	BranchName string `json:"branchName,omitempty"`
}

// Account is the full user record managed through the administration
// screens. User above is the slimmer profile attached to a session.
type Account struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	BranchID  int64  `json:"branch"`
	RoleID    int64  `json:"role"`
	Status    string `json:"status"`
}

// UserRole is one assignable role as listed by the backend.
type UserRole struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Branch struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductBranch is a product as stocked at a specific branch, with its own
// stock level and price.
type ProductBranch struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	BranchID  int64  `json:"branch_id"`
	Stock     int    `json:"stock"`
	Price     string `json:"price"`
}

type Review struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
