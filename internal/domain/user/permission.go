package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Attendance Management
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceMark    Permission = "attendance.mark"

	// Leave Management
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Payroll Management
	PermissionPayrollViewAll  Permission = "payroll.view_all"
	PermissionPayrollGenerate Permission = "payroll.generate"

	// Company & Billing
	PermissionCompanyManage Permission = "company.manage"
	PermissionBillingManage Permission = "billing.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionPayrollViewAll,
		PermissionPayrollGenerate,
		PermissionCompanyManage,
		PermissionBillingManage,
	},
	RoleManager: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionPayrollViewAll,
		PermissionPayrollGenerate,
	},
	RoleStaff: {
		PermissionEmployeeViewAll,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionLeaveViewAll,
		PermissionPayrollViewAll,
	},
}

// HasPermission checks whether a role carries a permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
