package computer

// Stored messages shown by the SRCF terminals. Each string is one page.
const (
	sr1Memo = "\n" +
		"  Subj: Security Reminder\n" +
		"  To: all SRCF staff\n" +
		"  From: Constantine Dvorak, Undersecretary of Nuclear Security\n" +
		"  \n" +
		"      I want to remind everyone on staff: Do not open or examine\n" +
		"  containers above your security-clearance.  If you have some\n" +
		"  question about safety protocols or shipping procedures, please\n" +
		"  contact your SRCF administrator or on-site military officer.\n" +
		"  When in doubt, assume all containers are Class-A Biohazards\n" +
		"  and highly toxic. Take full precautions!\n"

	sr2Memo = "\n" +
		"  Subj: Security Reminder\n" +
		"  To: all SRCF staff\n" +
		"  From: Constantine Dvorak, Undersecretary of Nuclear Security\n" +
		"  \n" +
		"  From today onward medical wastes are not to be stored anywhere\n" +
		"  near radioactive materials.  All containers are to be\n" +
		"  re-arranged according to these new regulations.  If your\n" +
		"  facility currently has these containers stored in close\n" +
		"  proximity, you are to work with armed guards on duty at all\n" +
		"  times. Report any unusual activity to your SRCF administrator\n" +
		"  at once.\n"

	sr3Memo = "\n" +
		"  Subj: Security Reminder\n" +
		"  To: all SRCF staff\n" +
		"  From: Constantine Dvorak, Undersecretary of Nuclear Security\n" +
		"  \n" +
		"  Worker health and safety is our number one concern!  As such,\n" +
		"  we are instituting weekly health examinations for all SRCF\n" +
		"  employees.  Report any unusual symptoms or physical changes\n" +
		"  to your SRCF administrator at once.\n"

	sr4Memo = "\n" +
		"  Subj: Security Reminder\n" +
		"  To: all SRCF staff\n" +
		"  From:  Constantine Dvorak, Undersecretary of Nuclear Security\n" +
		"  \n" +
		"  All compromised facilities will remain under lock down until\n" +
		"  further notice.  Anyone who has seen or come in direct contact\n" +
		"  with the creatures is to report to the home office for a full\n" +
		"  medical evaluation and security debriefing.\n"

	srcf1Memo = "\n" +
		"  Subj: EPA: Report All Potential Containment Breaches 3873643\n" +
		"  To: all SRCF staff\n" +
		"  From:  Robert Shane, Director of the EPA\n" +
		"  \n" +
		"  All hazardous waste dumps and sarcophagi must submit three\n" +
		"  samples from each operational leache system to the following\n" +
		"  addresses:\n" +
		"  \n" +
		"  CDC Bioterrorism Lab\n" +
		"  Building 10\n" +
		"  Corporate Square Boulevard\n" +
		"  Atlanta, GA 30329\n" +
		"  \n" +
		"  These samples must be accurate and any attempts to cover\n" +
		"  incompetencies will result in charges of Federal Corruption\n" +
		"  and potentially Treason.\n"

	srcf1Signature = "Director of the EPA,\n" +
		"  Robert Shane\n"

	srcf2Memo = " Subj: SRCF: Internal Memo, EPA [2918024]\n" +
		"  To: all SRCF admin staff\n" +
		"  From:  Constantine Dvorak, Undersecretary of Nuclear Security\n" +
		"  \n" +
		"  Director Grimes has released a new series of accusations that\n" +
		"  will soon be investigated by a Congressional committee.  Below\n" +
		"  is the message that he sent me.\n" +
		"  \n" +
		"  --------------------------------------------------------------\n" +
		"  Subj: Congressional Investigations\n" +
		"  To: Constantine Dvorak, Undersecretary of Nuclear Safety\n" +
		"  From: Robert Shane, director of the EPA\n" +
		"  \n" +
		"      The EPA has opposed the Security-Restricted Containment\n" +
		"  Facility (SRCF) project from its inception.  We were horrified\n" +
		"  that these facilities would be constructed so close to populated\n" +
		"  areas, and only agreed to sign-off on the project if we were\n" +
		"  allowed to freely examine and monitor the sarcophagi.\n"

	srcf2MemoEnd = "      Although our agents have not been allowed inside, our atmospheric\n" +
		"  testers in nearby communities have detected high levels of toxins\n" +
		"  and radiation.  We now have conclusive evidence that the SRCFs\n" +
		"  are a threat to the public safety.\n" +
		"  \n" +
		"  If you had any hand in this outbreak I hope you rot in hell.\n" +
		"  \n" +
		"  Director of the EPA,\n" +
		"  Robert Shane\n"

	srcf3Memo = " Subj: CDC: Internal Memo, Standby [2918115]\n" +
		"  To: all SRCF staff\n" +
		"  From:  Ellen Grimes, Director of the CDC\n" +
		"  \n" +
		"      Your site along with many others has been found to be\n" +
		"  contaminated with what we will now refer to as [redacted].\n" +
		"  It is vital that you standby for further orders.  You will\n" +
		"  proceed with fail-safe procedures and rig the sarcophagus with\n" +
		"  C-4 as outlined in Publication 4423.  It is of the utmost\n" +
		"  importance that the facility be sealed immediately when the\n" +
		"  orders are given.\n" +
		"  \n" +
		"  Director of the CDC,\n" +
		"  Ellen Grimes\n"

	srcfSealOrder = " Subj: USARMY: SEAL SRCF [987167]\n" +
		"  To: all SRCF staff\n" +
		"  From:  Major General Cornelius, U.S. Army\n" +
		"  \n" +
		"    As a general warning to all civilian staff: the 10th Mountain\n" +
		"  Division has been assigned to oversee the sealing of the SRCF\n" +
		"  facilities.  By direct order, all non-essential staff must vacate\n" +
		"  at the earliest possible opportunity to prevent potential\n" +
		"  contamination.  Low yield tactical nuclear demolition charges\n" +
		"  will be deployed in the lower tunnels to ensure that recovery\n" +
		"  of hazardous material is impossible.\n" +
		"  \n" +
		"  Cornelius,\n" +
		"  Major General, U.S. Army\n" +
		"  Commander of the 10th Mountain Division\n"
)
