package observability

import (
	"github.com/hospsys/patient-registry/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging
func MaskCPF(cpf string) string {
	if len(cpf) != 11 {
		return "***.***.***-**"
	}
	return cpf[:3] + ".***" + "." + cpf[6:9] + "-**"
}

// MaskCNS masks a CNS number for logging
func MaskCNS(cns string) string {
	if len(cns) != 15 {
		return "*** **** **** ****"
	}
	return cns[:3] + " **** **** " + cns[11:]
}
