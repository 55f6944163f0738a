package services

// ServiceContainer holds instances of all the core services. It is the main
// entry point for a UI shell consuming the ledger; the cart session is built
// separately, one per device, via the services package constructor.
type ServiceContainer struct {
	Inventory InventorySvcFacade
	Recorder  RecorderSvcFacade
	Credit    CreditSvcFacade
	Settings  SettingsSvcFacade
}
