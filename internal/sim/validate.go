package sim

func validateExperiments(n int) error {
	if n < 0 {
		return ErrInvalidExperiments
	}
	return nil
}
