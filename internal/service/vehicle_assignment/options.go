package vehicle_assignment

type Options struct {
	// ReleaseEndsPharmacyAssignment: курьер, оставшийся без машины, теряет и назначение на аптеку.
	ReleaseEndsPharmacyAssignment bool
}
