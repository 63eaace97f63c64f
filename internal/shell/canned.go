package shell

// cannedResponses answers commands that exist only for flavor. None of them
// look at their arguments or touch the tree.
var cannedResponses = map[string]string{
	"cp":             "Usage: cp <source> <destination>",
	"mv":             "Usage: mv <source> <destination>",
	"tail":           "Usage: tail <file>",
	"head":           "Usage: head <file>",
	"grep":           "Usage: grep <pattern> <file>",
	"find":           "Usage: find <path> [expression]",
	"locate":         "locate: command not found (database not initialized)",
	"man":            "What manual page do you want?",
	"chmod":          "Usage: chmod [permissions] <file>",
	"chown":          "Usage: chown [owner][:group] <file>",
	"chgrp":          "Usage: chgrp <group> <file>",
	"sudo":           "This incident will be reported.",
	"apt-get":        "apt-get: command not found (are you on the right distro?)",
	"yum":            "yum: command not found (are you on the right distro?)",
	"pacman":         "pacman: command not found (are you on the right distro?)",
	"df":             "Filesystem     1K-blocks    Used Available Use% Mounted on\n/dev/sda1       488384000 123456  488260544  1% /",
	"du":             "Usage: du [options] <file|directory>",
	"free":           "              total        used        free      shared  buff/cache   available\nMem:        16308648     4532152     9016676       425604     2769836    10638728",
	"top":            "top - 00:00:00 up  1:23,  0 users,  load average: 0.00, 0.00, 0.00\nTasks:   1 total,  1 running,  0 sleeping,  0 stopped,  0 zombie\n%Cpu(s):  0.0 us,  0.0 sy,  0.0 ni,100.0 id,  0.0 wa,  0.0 hi,  0.0 si,  0.0 st",
	"ps":             "  PID TTY          TIME CMD\n 1234 pts/0    00:00:00 bash\n 5678 pts/0    00:00:00 ps",
	"kill":           "Usage: kill <pid>",
	"killall":        "Usage: killall <process_name>",
	"service":        "Usage: service <service_name> <start|stop|restart>",
	"systemctl":      "Usage: systemctl <start|stop|restart|status> <service>",
	"ssh":            "Usage: ssh user@host",
	"scp":            "Usage: scp <source> <destination>",
	"rsync":          "Usage: rsync <source> <destination>",
	"ping":           "Usage: ping <host>",
	"traceroute":     "Usage: traceroute <host>",
	"netstat":        "Active Internet connections (servers and established)...",
	"ifconfig":       "Command 'ifconfig' not found, but can be installed with: apt install net-tools",
	"ip":             "Usage: ip [OPTIONS] OBJECT { COMMAND | help }",
	"alias":          "Usage: alias <name>=<command>",
	"unalias":        "Usage: unalias <name>",
	"history":        "History is disabled in this mock shell.",
	"echo":           "Usage: echo <text>",
	"nano":           "GNU nano version 5.8\n(C) 1999-2021 the Free Software Foundation, etc.",
	"vi":             "vi: command not found",
	"vim":            "vim: command not found",
	"git":            "git: command not found",
	"docker":         "docker: command not found",
	"docker-compose": "docker-compose: command not found",
	"pip":            "pip: command not found",
}

// CannedResponse returns the fixed reply for name, if it has one.
func CannedResponse(name string) (string, bool) {
	s, ok := cannedResponses[name]
	return s, ok
}
