package routetable

import "github.com/JaimeStill/registry-admin/pkg/navigation"

func page(path, name string, component navigation.ComponentKey) navigation.Descriptor {
	return navigation.Descriptor{
		Path:      path,
		Name:      name,
		Component: component,
		Guard:     navigation.GuardAuthenticated,
	}
}

// group registers path as the group's landing page. Children do not repeat it.
func group(path, name, icon, header string, component navigation.ComponentKey, children ...navigation.Descriptor) navigation.Descriptor {
	return navigation.Descriptor{
		Path:      path,
		Name:      name,
		Component: component,
		Guard:     navigation.GuardAuthenticated,
		Icon:      icon,
		Header:    header,
		Children:  children,
	}
}

func protectedGroups() []navigation.Descriptor {
	return []navigation.Descriptor{
		dashboardGroup(),
		usersGroup(),
		shareholdersGroup(),
		organisationsGroup(),
		configGroup(),
		cdscGroup(),
		paymentsGroup(),
		chequesGroup(),
		sharesMaintenanceGroup(),
		reconciliationGroup(),
	}
}

func dashboardGroup() navigation.Descriptor {
	return group("/dashboard", "Dashboard", "dashboard", "Overview", "dashboard.Overview",
		page("/dashboard/activity", "Recent Activity", "dashboard.Activity"),
	)
}

func usersGroup() navigation.Descriptor {
	return group("/users", "Users", "people", "Administration", "users.List",
		page("/users/new", "Create User", "users.Create"),
		page("/users/:id", "", "users.Detail"),
		page("/users/:id/edit", "", "users.Edit"),
		page("/users/roles", "Roles & Permissions", "users.Roles"),
	)
}

func shareholdersGroup() navigation.Descriptor {
	return group("/shareholders", "Shareholders", "account_balance", "Registry", "shareholders.List",
		page("/shareholders/new", "New Shareholder", "shareholders.Create"),
		page("/shareholders/pending", "Pending Approval", "shareholders.Pending"),
		page("/shareholders/:id", "", "shareholders.Detail"),
		page("/shareholders/:id/edit", "", "shareholders.Edit"),
		page("/shareholders/:id/holdings", "", "shareholders.Holdings"),
		group("/shareholders/certificates", "Certificates", "", "", "certificates.List",
			page("/shareholders/certificates/issue", "Issue Certificate", "certificates.Issue"),
			page("/shareholders/certificates/:id", "", "certificates.Detail"),
		),
		group("/shareholders/approvals", "Approvals", "", "", "shareholders.Approvals",
			page("/shareholders/pending", "Pending Updates", "shareholders.PendingUpdates"),
			page("/shareholders/approvals/history", "Approval History", "shareholders.ApprovalHistory"),
		),
	)
}

func organisationsGroup() navigation.Descriptor {
	return group("/organisations", "Organisations", "business", "Registry", "organisations.List",
		page("/organisations/new", "New Organisation", "organisations.Create"),
		page("/organisations/:id", "", "organisations.Detail"),
		page("/organisations/:id/edit", "", "organisations.Edit"),
	)
}

func configGroup() navigation.Descriptor {
	return group("/config", "Configuration", "settings", "Administration", "config.Overview",
		page("/config/banks", "Banks", "config.Banks"),
		page("/config/branches", "Bank Branches", "config.Branches"),
		page("/config/stockbrokers", "Stockbrokers", "config.Stockbrokers"),
		page("/config/share-classes", "Share Classes", "config.ShareClasses"),
		page("/config/tax-rates", "Tax Rates", "config.TaxRates"),
	)
}

func cdscGroup() navigation.Descriptor {
	return group("/cdsc", "CDSC", "swap_horiz", "Depository", "cdsc.Overview",
		page("/cdsc/uploads", "File Uploads", "cdsc.Uploads"),
		page("/cdsc/uploads/:id", "", "cdsc.UploadDetail"),
		page("/cdsc/transfers", "Transfers", "cdsc.Transfers"),
		page("/cdsc/accounts", "Depository Accounts", "cdsc.Accounts"),
	)
}

func paymentsGroup() navigation.Descriptor {
	return group("/payments", "Payments", "payments", "Finance", "payments.List",
		page("/payments/dividends", "Dividends", "payments.Dividends"),
		page("/payments/dividends/new", "Declare Dividend", "payments.DeclareDividend"),
		page("/payments/dividends/:id", "", "payments.DividendDetail"),
		page("/payments/mandates", "E-Mandates", "payments.Mandates"),
		page("/payments/unclaimed", "Unclaimed Dividends", "payments.Unclaimed"),
	)
}

func chequesGroup() navigation.Descriptor {
	return group("/cheques", "Cheques", "receipt", "Finance", "cheques.List",
		page("/cheques/print", "Print Batch", "cheques.Print"),
		page("/cheques/revalidation", "Revalidation", "cheques.Revalidation"),
		page("/cheques/:id", "", "cheques.Detail"),
	)
}

func sharesMaintenanceGroup() navigation.Descriptor {
	return group("/shares-maintenance", "Shares Maintenance", "build", "Registry", "shares.Overview",
		page("/shares-maintenance/bonus", "Bonus Issues", "shares.Bonus"),
		page("/shares-maintenance/rights", "Rights Issues", "shares.Rights"),
		page("/shares-maintenance/splits", "Splits & Consolidations", "shares.Splits"),
		page("/shares-maintenance/transfers", "Transfers", "shares.Transfers"),
		page("/shares-maintenance/transmission", "Transmission", "shares.Transmission"),
	)
}

func reconciliationGroup() navigation.Descriptor {
	return group("/reconciliation", "Reconciliation", "balance", "Finance", "reconciliation.Overview",
		page("/reconciliation/bank", "Bank Statements", "reconciliation.Bank"),
		page("/reconciliation/cdsc", "CDSC Positions", "reconciliation.CDSC"),
		page("/reconciliation/reports", "Reports", "reconciliation.Reports"),
		page("/reconciliation/reports/:id", "", "reconciliation.ReportDetail"),
	)
}
