package entity

// Capability names a permission the authorization guard evaluates per call.
type Capability string

const (
	CapCreateShop          Capability = "create_shop"
	CapManageOwnShop       Capability = "manage_own_shop"
	CapAddProduct          Capability = "add_product"
	CapReviewVerification  Capability = "review_verification"
	CapDecideVerification  Capability = "approve_or_reject_verification"
	CapViewAdminDashboard  Capability = "view_admin_dashboard"
	CapViewSellerDashboard Capability = "view_seller_dashboard"
	CapChangeAccountRole   Capability = "change_account_role"
)
