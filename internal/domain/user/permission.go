package user

type Permission string

const (
	// Self service
	PermissionProfileEditOwn    Permission = "profile.edit_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionCutiCreate        Permission = "cuti.create"
	PermissionReportCreate      Permission = "report.create"
	PermissionTaskCreate        Permission = "task.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Administration
	PermissionReportViewAll   Permission = "report.view_all"
	PermissionCutiApprove     Permission = "cuti.approve"
	PermissionTaskManageAll   Permission = "task.manage_all"
	PermissionUserManage      Permission = "user.manage"
	PermissionUserViewAll     Permission = "user.view_all"
	PermissionSettingsManage  Permission = "settings.manage"
	PermissionRekapView       Permission = "rekap.view"
	PermissionActivityViewAll Permission = "activity.view_all"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionProfileEditOwn,
		PermissionAttendanceCreate,
		PermissionCutiCreate,
		PermissionReportCreate,
		PermissionTaskCreate,
		PermissionAttendanceViewAll,
		PermissionReportViewAll,
		PermissionCutiApprove,
		PermissionTaskManageAll,
		PermissionUserManage,
		PermissionUserViewAll,
		PermissionSettingsManage,
		PermissionRekapView,
		PermissionActivityViewAll,
	},
	RoleTenaga: {
		PermissionProfileEditOwn,
		PermissionAttendanceCreate,
		PermissionCutiCreate,
		PermissionReportCreate,
		PermissionTaskCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
